package schedulers

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"schedsim/internal/core"
	"schedsim/internal/requests"
)

const (
	defaultArrival  = 0
	defaultBurst    = 1
	defaultPriority = 0
)

// NormalizeProcesses turns raw job descriptors into canonical processes sorted
// by arrival. It never fails: malformed or missing fields fall back to their
// defaults (arrival 0, burst 1, priority 0) and missing pids become P<n>,
// where n is the 1-based input position. Pids are made unique and never equal
// the idle marker.
func NormalizeProcesses(jobs []requests.Job) []core.Process {
	processes := make([]core.Process, 0, len(jobs))
	used := make(map[string]struct{}, len(jobs))
	for i, job := range jobs {
		index := i + 1
		processes = append(processes, core.Process{
			PID:      uniquePID(coercePID(job.ProcessId), index, used),
			Arrival:  CoerceFloat(job.ArrivalTime, defaultArrival),
			Burst:    CoerceFloat(job.BurstTime, defaultBurst),
			Priority: coerceInt(job.Priority, defaultPriority),
		})
	}

	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Arrival < processes[j].Arrival
	})
	return processes
}

// CoerceFloat reads v as a finite number, returning fallback when it cannot.
func CoerceFloat(v any, fallback float64) float64 {
	f, ok := asFloat(v)
	if !ok {
		return fallback
	}
	return f
}

func coerceInt(v any, fallback int) int {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	f, ok := asFloat(v)
	if !ok || f > math.MaxInt32 || f < math.MinInt32 {
		return fallback
	}
	return int(f)
}

func asFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case bool:
		if t {
			f = 1
		}
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// coercePID stringifies scalar pids. Zero values (empty string, 0, false,
// null) yield "" so the caller synthesizes one.
func coercePID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return ""
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ""
		}
		return t.String()
	}
	f, ok := asFloat(v)
	if !ok || f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func uniquePID(pid string, index int, used map[string]struct{}) string {
	taken := func(candidate string) bool {
		_, ok := used[candidate]
		return ok || candidate == core.IdlePID
	}

	candidate := pid
	if candidate == "" || taken(candidate) {
		candidate = "P" + strconv.Itoa(index)
	}
	for k := 2; taken(candidate); k++ {
		candidate = fmt.Sprintf("P%d_%d", index, k)
	}
	used[candidate] = struct{}{}
	return candidate
}
