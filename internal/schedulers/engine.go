package schedulers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

const DefaultAlgorithm = "FCFS"

// ResultCache memoizes responses by a deterministic request key.
type ResultCache interface {
	Get(key string) (responses.ScheduleResponse, bool)
	Set(key string, response responses.ScheduleResponse)
}

// Recorder receives runtime statistics about simulations.
type Recorder interface {
	Simulation(algorithm string, processCount int, started time.Time)
	Failure(reason string)
	CacheHit()
	CacheMiss()
}

type EngineConfig struct {
	// DefaultQuantum is used when a request carries no usable quantum.
	DefaultQuantum float64
	// MaxProcesses caps the size of one request, 0 means unbounded.
	MaxProcesses int
	// MaxSegments caps the round robin timeline, 0 means unbounded.
	MaxSegments int
}

type EngineOption func(*Engine)

func WithCache(cache ResultCache) EngineOption {
	return func(e *Engine) { e.cache = cache }
}

func WithRecorder(recorder Recorder) EngineOption {
	return func(e *Engine) { e.recorder = recorder }
}

// Engine is the entry point used by the http adapter and the cli. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	config   EngineConfig
	logger   *zap.Logger
	cache    ResultCache
	recorder Recorder
}

func NewEngine(config EngineConfig, logger *zap.Logger, options ...EngineOption) *Engine {
	e := &Engine{config: config, logger: logger}
	for _, option := range options {
		option(e)
	}
	return e
}

// Quantum coerces a raw quantum value, falling back to the configured default
// when it is missing or not a number.
func (e *Engine) Quantum(raw any) float64 {
	return CoerceFloat(raw, e.config.DefaultQuantum)
}

// Simulate normalizes jobs and schedules them with the named algorithm.
func (e *Engine) Simulate(jobs []requests.Job, algorithmName string, quantum float64) (responses.ScheduleResponse, error) {
	algorithm, err := ParseAlgorithm(algorithmName)
	if err != nil {
		e.logger.Info("rejected simulation", zap.String("algorithm", algorithmName), zap.Error(err))
		e.recordFailure(err)
		return responses.ScheduleResponse{}, err
	}
	processes, err := e.normalize(jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return e.run(processes, algorithm, quantum)
}

// Compare runs every algorithm over the same jobs.
func (e *Engine) Compare(jobs []requests.Job, quantum float64) (responses.CompareResponse, error) {
	processes, err := e.normalize(jobs)
	if err != nil {
		return responses.CompareResponse{}, err
	}

	results := make([]responses.AlgorithmResponse, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		response, err := e.run(processes, algorithm, quantum)
		if err != nil {
			return responses.CompareResponse{}, err
		}
		results = append(results, responses.AlgorithmResponse{
			Algorithm:        algorithm.String(),
			ScheduleResponse: response,
		})
	}
	return responses.CompareResponse{Results: results}, nil
}

func (e *Engine) normalize(jobs []requests.Job) ([]core.Process, error) {
	if e.config.MaxProcesses > 0 && len(jobs) > e.config.MaxProcesses {
		e.logger.Info("rejected simulation", zap.Int("processes", len(jobs)), zap.Int("max_processes", e.config.MaxProcesses))
		e.recordFailure(ErrTooManyProcesses)
		return nil, ErrTooManyProcesses
	}
	return NormalizeProcesses(jobs), nil
}

func (e *Engine) run(processes []core.Process, algorithm Algorithm, quantum float64) (responses.ScheduleResponse, error) {
	started := time.Now()
	key := cacheKey(processes, algorithm, quantum)
	if e.cache != nil {
		if response, ok := e.cache.Get(key); ok {
			e.recordCache(true)
			return response, nil
		}
		e.recordCache(false)
	}

	response, err := Dispatch(processes, algorithm, Options{Quantum: quantum, MaxSegments: e.config.MaxSegments})
	if err != nil {
		e.logger.Info("rejected simulation", zap.Stringer("algorithm", algorithm), zap.Error(err))
		e.recordFailure(err)
		return responses.ScheduleResponse{}, err
	}

	if e.cache != nil {
		e.cache.Set(key, response)
	}
	if e.recorder != nil {
		e.recorder.Simulation(algorithm.String(), len(processes), started)
	}
	e.logger.Debug("simulation completed",
		zap.Stringer("algorithm", algorithm),
		zap.Int("processes", len(processes)),
		zap.Int("segments", len(response.Gantt)),
		zap.Float64("avg_waiting_time", response.AverageWaitingTime),
		zap.Float64("avg_turnaround_time", response.AverageTurnAroundTime))
	return response, nil
}

func (e *Engine) recordCache(hit bool) {
	if e.recorder == nil {
		return
	}
	if hit {
		e.recorder.CacheHit()
	} else {
		e.recorder.CacheMiss()
	}
}

func (e *Engine) recordFailure(err error) {
	if e.recorder == nil {
		return
	}
	e.recorder.Failure(failureReason(err))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownAlgorithm):
		return "unknown_algorithm"
	case errors.Is(err, ErrInvalidBurst):
		return "invalid_burst"
	case errors.Is(err, ErrInvalidQuantum):
		return "invalid_quantum"
	case errors.Is(err, ErrTooManyProcesses):
		return "too_many_processes"
	case errors.Is(err, ErrTimelineTooLong):
		return "timeline_too_long"
	case errors.Is(err, ErrTimeOverflow):
		return "time_overflow"
	}
	return "other"
}

// cacheKey identifies a simulation by its normalized input. The quantum is
// only part of the key for round robin.
func cacheKey(processes []core.Process, algorithm Algorithm, quantum float64) string {
	var b strings.Builder
	b.WriteString(algorithm.String())
	if algorithm == RoundRobin {
		b.WriteByte('/')
		b.WriteString(strconv.FormatFloat(quantum, 'g', -1, 64))
	}
	for _, p := range processes {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(p.PID))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Arrival, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Burst, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Priority))
	}
	return b.String()
}
