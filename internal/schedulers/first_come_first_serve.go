package schedulers

import (
	"sort"

	"schedsim/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order,
// inserting idle time whenever the cpu waits for the next arrival.
func ScheduleFirstComeFirstServe(processes []core.Process) core.Timeline {
	jobs := sortedByArrival(processes)

	timeline := make(core.Timeline, 0, len(jobs))
	var clock float64
	for _, job := range jobs {
		clock = timeline.IdleUntil(clock, job.Arrival)
		clock = timeline.Run(job.PID, clock, job.Burst)
	}
	return timeline
}

// sortedByArrival returns a copy of processes, stable sorted by arrival time.
func sortedByArrival(processes []core.Process) []core.Process {
	jobs := core.CloneProcesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Arrival < jobs[j].Arrival
	})
	return jobs
}
