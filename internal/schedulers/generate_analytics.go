package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// ComputeMetrics derives per-process completion, turnaround and waiting time
// from a timeline. A process's completion is the end of its last segment, or
// its arrival when it never ran. Averages are 0 for an empty process list.
func ComputeMetrics(processes []core.Process, timeline core.Timeline) (details []responses.ProcessResponse, averageWaitingTime, averageTurnAroundTime float64) {
	details = processDetails(processes, timeline)
	averageWaitingTime, _, averageTurnAroundTime = util.CalculateAverage(details)
	return details, averageWaitingTime, averageTurnAroundTime
}

func processDetails(processes []core.Process, timeline core.Timeline) []responses.ProcessResponse {
	completion := make(map[string]float64, len(processes))
	firstStart := make(map[string]float64, len(processes))
	for _, segment := range timeline {
		if segment.IsIdle() {
			continue
		}
		completion[segment.PID] = segment.End
		if _, ok := firstStart[segment.PID]; !ok {
			firstStart[segment.PID] = segment.Start
		}
	}

	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		completionTime, ok := completion[process.PID]
		if !ok {
			completionTime = process.Arrival
		}
		var responseTime float64
		if start, ok := firstStart[process.PID]; ok {
			responseTime = start - process.Arrival
		}
		turnAroundTime := completionTime - process.Arrival

		details = append(details, responses.ProcessResponse{
			ProcessId:      process.PID,
			ArrivalTime:    process.Arrival,
			BurstTime:      process.Burst,
			CompletionTime: completionTime,
			TurnAroundTime: turnAroundTime,
			WaitingTime:    turnAroundTime - process.Burst,
			ResponseTime:   responseTime,
		})
	}
	return details
}

func generateResponse(processes []core.Process, timeline core.Timeline) responses.ScheduleResponse {
	details := processDetails(processes, timeline)
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(details)
	cpuMetric := core.MeasureCpu(timeline)

	return responses.ScheduleResponse{
		Gantt:                 timeline,
		Details:               details,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		AverageResponseTime:   averageResponseTime,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(processes)),
	}
}
