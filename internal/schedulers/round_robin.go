package schedulers

import (
	"math"

	"schedsim/internal/core"
)

// burstEpsilon is the largest remainder treated as a finished burst, so that
// fractional quanta do not leave a sliver of float residue as an extra slice.
const burstEpsilon = 1e-9

// ScheduleRoundRobin grants each ready process at most timeQuantum of cpu in
// FIFO order. Processes that arrive while a slice runs are queued before the
// preempted process is put back. A maxSegments above zero bounds the size of
// the produced timeline.
func ScheduleRoundRobin(processes []core.Process, timeQuantum float64, maxSegments int) (core.Timeline, error) {
	if !(timeQuantum > 0) || math.IsInf(timeQuantum, 1) {
		return nil, ErrInvalidQuantum
	}

	arrivals := sortedByArrival(processes)
	remaining := make([]float64, len(arrivals))
	for i := range arrivals {
		remaining[i] = arrivals[i].Burst
	}

	readyQueue := make([]int, 0, len(arrivals))
	timeline := make(core.Timeline, 0, len(arrivals))
	var clock float64
	next := 0

	admitArrived := func() {
		for next < len(arrivals) && arrivals[next].Arrival <= clock {
			readyQueue = append(readyQueue, next)
			next++
		}
	}

	for next < len(arrivals) || len(readyQueue) > 0 {
		if maxSegments > 0 && len(timeline) >= maxSegments {
			return nil, ErrTimelineTooLong
		}

		admitArrived()
		if len(readyQueue) == 0 {
			clock = timeline.IdleUntil(clock, arrivals[next].Arrival)
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]

		// non-positive bursts yield an empty slice and drop out of the queue
		run := math.Max(0, math.Min(timeQuantum, remaining[current]))
		left := remaining[current] - run
		if left <= burstEpsilon {
			run, left = math.Max(0, remaining[current]), 0
		}
		if run > 0 && left == remaining[current] {
			// the quantum is below the precision of the burst
			return nil, ErrTimeOverflow
		}
		clock = timeline.Run(arrivals[current].PID, clock, run)
		remaining[current] = left

		admitArrived()
		if remaining[current] > 0 {
			readyQueue = append(readyQueue, current)
		}
	}
	return timeline, nil
}
