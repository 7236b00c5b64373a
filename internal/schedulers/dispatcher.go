package schedulers

import (
	"fmt"
	"math"
	"strings"

	"schedsim/internal/core"
	"schedsim/internal/responses"
)

// Algorithm selects one of the supported scheduling policies.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota + 1
	ShortestJobFirst
	RoundRobin
	Priority
)

// Algorithms lists every policy in the order comparisons report them.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}

var algorithmNames = map[Algorithm]string{
	FirstComeFirstServe: "FCFS",
	ShortestJobFirst:    "SJF",
	RoundRobin:          "RR",
	Priority:            "PRIORITY",
}

var algorithmsByName = map[string]Algorithm{
	"FCFS":        FirstComeFirstServe,
	"SJF":         ShortestJobFirst,
	"RR":          RoundRobin,
	"ROUNDROBIN":  RoundRobin,
	"ROUND_ROBIN": RoundRobin,
	"ROUND-ROBIN": RoundRobin,
	"PRIORITY":    Priority,
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm, ok := algorithmsByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrUnknownAlgorithm
	}
	return algorithm, nil
}

// Options carries the per-call knobs of a simulation.
type Options struct {
	// Quantum is the round robin time slice; other algorithms ignore it.
	Quantum float64
	// MaxSegments bounds the round robin timeline, 0 means unbounded.
	MaxSegments int
}

type scheduleFunc func(processes []core.Process, options Options) (core.Timeline, error)

var schedulersByAlgorithm = map[Algorithm]scheduleFunc{
	FirstComeFirstServe: func(processes []core.Process, _ Options) (core.Timeline, error) {
		return ScheduleFirstComeFirstServe(processes), nil
	},
	ShortestJobFirst: func(processes []core.Process, _ Options) (core.Timeline, error) {
		return ScheduleShortestJobFirst(processes), nil
	},
	RoundRobin: func(processes []core.Process, options Options) (core.Timeline, error) {
		return ScheduleRoundRobin(processes, options.Quantum, options.MaxSegments)
	},
	Priority: func(processes []core.Process, _ Options) (core.Timeline, error) {
		return SchedulePriority(processes), nil
	},
}

// Dispatch runs algorithm over a private copy of processes and computes the
// metrics against the untouched input.
func Dispatch(processes []core.Process, algorithm Algorithm, options Options) (responses.ScheduleResponse, error) {
	schedule, ok := schedulersByAlgorithm[algorithm]
	if !ok {
		return responses.ScheduleResponse{}, ErrUnknownAlgorithm
	}
	if err := validateBursts(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}

	working := core.CloneProcesses(processes)
	timeline, err := schedule(working, options)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response := generateResponse(processes, timeline)
	if !isFinite(response) {
		return responses.ScheduleResponse{}, ErrTimeOverflow
	}
	return response, nil
}

// isFinite reports whether every time in response is a finite number. Finite
// inputs can still overflow once arrivals and bursts are summed.
func isFinite(response responses.ScheduleResponse) bool {
	values := []float64{
		response.AverageWaitingTime,
		response.AverageTurnAroundTime,
		response.AverageResponseTime,
		response.TotalTime,
		response.IdleTime,
		response.CpuUtilization,
		response.CpuThroughput,
	}
	for _, segment := range response.Gantt {
		values = append(values, segment.Start, segment.End)
	}
	for _, detail := range response.Details {
		values = append(values, detail.CompletionTime, detail.TurnAroundTime, detail.WaitingTime, detail.ResponseTime)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validateBursts(processes []core.Process) error {
	for _, process := range processes {
		if !(process.Burst > 0) || math.IsInf(process.Burst, 1) {
			return fmt.Errorf("process %s: %w", process.PID, ErrInvalidBurst)
		}
	}
	return nil
}
