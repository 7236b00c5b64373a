package schedulers

import "schedsim/internal/core"

// ScheduleShortestJobFirst is non-preemptive SJF. Among the processes that
// have arrived, the smallest burst runs next; ties go to the earlier arrival,
// then the lexically smaller pid, then input order.
func ScheduleShortestJobFirst(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, shorterJob)
}

func shorterJob(a, b core.Process) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.PID < b.PID
}

// scheduleNonPreemptive repeatedly picks the best arrived process according to
// better and runs its whole burst. When nothing has arrived the clock jumps to
// the next arrival behind an idle segment.
func scheduleNonPreemptive(processes []core.Process, better func(a, b core.Process) bool) core.Timeline {
	// remaining keeps arrival order, so remaining[0] is always the next arrival.
	remaining := sortedByArrival(processes)

	timeline := make(core.Timeline, 0, 2*len(remaining))
	var clock float64
	for len(remaining) > 0 {
		pick := -1
		for i, candidate := range remaining {
			if candidate.Arrival > clock {
				continue
			}
			if pick < 0 || better(candidate, remaining[pick]) {
				pick = i
			}
		}
		if pick < 0 {
			clock = timeline.IdleUntil(clock, remaining[0].Arrival)
			continue
		}

		job := remaining[pick]
		clock = timeline.Run(job.PID, clock, job.Burst)
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}
	return timeline
}
