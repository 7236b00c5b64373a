package responses

import "schedsim/internal/core"

// ProcessResponse is the metric record of one input process.
type ProcessResponse struct {
	ProcessId      string  `json:"pid"`
	ArrivalTime    float64 `json:"arrival"`
	BurstTime      float64 `json:"burst"`
	CompletionTime float64 `json:"completion"`
	TurnAroundTime float64 `json:"turnaround"`
	WaitingTime    float64 `json:"waiting"`
	ResponseTime   float64 `json:"response"`
}

type ScheduleResponse struct {
	Gantt                 core.Timeline     `json:"gantt"`
	Details               []ProcessResponse `json:"metrics"`
	AverageWaitingTime    float64           `json:"avg_waiting_time"`
	AverageTurnAroundTime float64           `json:"avg_turnaround_time"`
	AverageResponseTime   float64           `json:"avg_response_time"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
}

// Clone returns a copy that shares no slices with r.
func (r ScheduleResponse) Clone() ScheduleResponse {
	out := r
	out.Gantt = r.Gantt.Clone()
	if r.Details != nil {
		out.Details = make([]ProcessResponse, len(r.Details))
		copy(out.Details, r.Details)
	}
	return out
}

// AlgorithmResponse is one entry of a side by side comparison.
type AlgorithmResponse struct {
	Algorithm string `json:"algorithm"`
	ScheduleResponse
}

type CompareResponse struct {
	Results []AlgorithmResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
