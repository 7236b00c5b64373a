package core

// Process is the canonical, normalized unit of work handed to the schedulers.
// Burst must be positive; Priority is only read by the priority scheduler
// where a lower value wins.
type Process struct {
	PID      string  `json:"pid"`
	Arrival  float64 `json:"arrival"`
	Burst    float64 `json:"burst"`
	Priority int     `json:"priority"`
}

// CloneProcesses returns an independent copy of processes.
func CloneProcesses(processes []Process) []Process {
	if processes == nil {
		return nil
	}
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}

// CpuMetric summarizes how a single simulated cpu spent a timeline.
type CpuMetric struct {
	TotalTime float64
	BusyTime  float64
	IdleTime  float64
}

// MeasureCpu walks a timeline and accounts busy and idle time. TotalTime is
// the end of the last segment, so time before the first segment counts as idle.
func MeasureCpu(timeline Timeline) CpuMetric {
	var metric CpuMetric
	if len(timeline) == 0 {
		return metric
	}
	for _, segment := range timeline {
		if segment.IsIdle() {
			metric.IdleTime += segment.Duration()
		} else {
			metric.BusyTime += segment.Duration()
		}
	}
	metric.TotalTime = timeline[len(timeline)-1].End
	if lead := timeline[0].Start; lead > 0 {
		metric.IdleTime += lead
	}
	return metric
}

// Utilization is the busy share of total time, 0 when nothing ran.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime <= 0 {
		return 0
	}
	return m.BusyTime / m.TotalTime
}

// Throughput is completed processes per unit of time, 0 when nothing ran.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime <= 0 {
		return 0
	}
	return float64(processCount) / m.TotalTime
}
