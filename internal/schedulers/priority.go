package schedulers

import "schedsim/internal/core"

// SchedulePriority is non-preemptive priority scheduling: the arrived process
// with the lowest priority number runs next. Ties go to the earlier arrival,
// then the lexically smaller pid.
func SchedulePriority(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, higherPriority)
}

func higherPriority(a, b core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.PID < b.PID
}
