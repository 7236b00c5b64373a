package schedulers

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"schedsim/internal/core"
)

func proc(pid string, arrival, burst float64, priority int) core.Process {
	return core.Process{PID: pid, Arrival: arrival, Burst: burst, Priority: priority}
}

func seg(pid string, start, end float64) core.Segment {
	return core.Segment{PID: pid, Start: start, End: end}
}

func TestScheduleFirstComeFirstServe(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      core.Timeline
	}{
		{
			name:      "back to back",
			processes: []core.Process{proc("P1", 0, 5, 0), proc("P2", 1, 3, 0)},
			want:      core.Timeline{seg("P1", 0, 5), seg("P2", 5, 8)},
		},
		{
			name:      "idle gaps",
			processes: []core.Process{proc("P1", 2, 1, 0), proc("P2", 5, 2, 0)},
			want:      core.Timeline{seg(core.IdlePID, 0, 2), seg("P1", 2, 3), seg(core.IdlePID, 3, 5), seg("P2", 5, 7)},
		},
		{
			name:      "equal arrivals keep input order",
			processes: []core.Process{proc("B", 0, 1, 0), proc("A", 0, 2, 0)},
			want:      core.Timeline{seg("B", 0, 1), seg("A", 1, 3)},
		},
		{
			name:      "unsorted input",
			processes: []core.Process{proc("late", 4, 1, 0), proc("early", 0, 2, 0)},
			want:      core.Timeline{seg("early", 0, 2), seg(core.IdlePID, 2, 4), seg("late", 4, 5)},
		},
		{
			name: "empty",
			want: core.Timeline{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleFirstComeFirstServe(tt.processes)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("timeline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScheduleShortestJobFirst(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      core.Timeline
	}{
		{
			name: "textbook",
			processes: []core.Process{
				proc("P1", 0, 8, 0), proc("P2", 1, 4, 0), proc("P3", 2, 9, 0), proc("P4", 3, 5, 0),
			},
			want: core.Timeline{seg("P1", 0, 8), seg("P2", 8, 12), seg("P4", 12, 17), seg("P3", 17, 26)},
		},
		{
			name:      "idle until first arrival",
			processes: []core.Process{proc("A", 3, 2, 0), proc("B", 3, 1, 0)},
			want:      core.Timeline{seg(core.IdlePID, 0, 3), seg("B", 3, 4), seg("A", 4, 6)},
		},
		{
			name:      "equal bursts go to earlier arrival",
			processes: []core.Process{proc("X", 0, 10, 0), proc("Z", 2, 3, 0), proc("Y", 1, 3, 0)},
			want:      core.Timeline{seg("X", 0, 10), seg("Y", 10, 13), seg("Z", 13, 16)},
		},
		{
			name:      "equal bursts and arrivals go to smaller pid",
			processes: []core.Process{proc("B", 0, 2, 0), proc("A", 0, 2, 0)},
			want:      core.Timeline{seg("A", 0, 2), seg("B", 2, 4)},
		},
		{
			name:      "idle between batches",
			processes: []core.Process{proc("A", 0, 1, 0), proc("B", 5, 2, 0), proc("C", 5, 1, 0)},
			want:      core.Timeline{seg("A", 0, 1), seg(core.IdlePID, 1, 5), seg("C", 5, 6), seg("B", 6, 8)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleShortestJobFirst(tt.processes)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("timeline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScheduleRoundRobin(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		quantum   float64
		want      core.Timeline
	}{
		{
			name:      "two processes",
			processes: []core.Process{proc("P1", 0, 5, 0), proc("P2", 1, 3, 0)},
			quantum:   2,
			want: core.Timeline{
				seg("P1", 0, 2), seg("P2", 2, 4), seg("P1", 4, 6), seg("P2", 6, 7), seg("P1", 7, 8),
			},
		},
		{
			name:      "arrival at slice end is queued before the preempted process",
			processes: []core.Process{proc("A", 0, 4, 0), proc("B", 2, 2, 0)},
			quantum:   2,
			want:      core.Timeline{seg("A", 0, 2), seg("B", 2, 4), seg("A", 4, 6)},
		},
		{
			name:      "idle until next arrival",
			processes: []core.Process{proc("A", 0, 1, 0), proc("B", 3, 1, 0)},
			quantum:   2,
			want:      core.Timeline{seg("A", 0, 1), seg(core.IdlePID, 1, 3), seg("B", 3, 4)},
		},
		{
			name:      "fractional quantum",
			processes: []core.Process{proc("A", 0, 1, 0)},
			quantum:   0.5,
			want:      core.Timeline{seg("A", 0, 0.5), seg("A", 0.5, 1)},
		},
		{
			name:      "quantum larger than every burst behaves like fcfs",
			processes: []core.Process{proc("A", 0, 3, 0), proc("B", 1, 2, 0)},
			quantum:   10,
			want:      core.Timeline{seg("A", 0, 3), seg("B", 3, 5)},
		},
		{
			name:      "non-positive burst terminates",
			processes: []core.Process{proc("A", 0, 0, 0), proc("B", 0, -1, 0), proc("C", 0, 1, 0)},
			quantum:   2,
			want:      core.Timeline{seg("A", 0, 0), seg("B", 0, 0), seg("C", 0, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScheduleRoundRobin(tt.processes, tt.quantum, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("timeline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScheduleRoundRobinRejectsQuantum(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 5, 0)}
	for _, quantum := range []float64{0, -2} {
		if _, err := ScheduleRoundRobin(processes, quantum, 0); !errors.Is(err, ErrInvalidQuantum) {
			t.Fatalf("quantum %v: got %v, want ErrInvalidQuantum", quantum, err)
		}
	}
}

func TestScheduleRoundRobinFractionalQuantum(t *testing.T) {
	timeline, err := ScheduleRoundRobin([]core.Process{proc("P1", 0, 1, 0)}, 0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(timeline) != 10 {
		t.Fatalf("expected 10 slices of 0.1, got %d: %+v", len(timeline), timeline)
	}
	if err := timeline.Validate(); err != nil {
		t.Fatal(err)
	}
	if end := timeline[len(timeline)-1].End; math.Abs(end-1) > 1e-9 {
		t.Fatalf("last slice ends at %v, want 1", end)
	}
}

func TestScheduleRoundRobinQuantumBelowBurstPrecision(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 1e308, 0)}
	if _, err := ScheduleRoundRobin(processes, 2, 0); !errors.Is(err, ErrTimeOverflow) {
		t.Fatalf("got %v, want ErrTimeOverflow", err)
	}
}

func TestScheduleRoundRobinSegmentLimit(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 10, 0)}
	if _, err := ScheduleRoundRobin(processes, 1, 5); !errors.Is(err, ErrTimelineTooLong) {
		t.Fatalf("got %v, want ErrTimelineTooLong", err)
	}
	timeline, err := ScheduleRoundRobin(processes, 1, 10)
	if err != nil {
		t.Fatalf("limit equal to the segment count must pass: %v", err)
	}
	if len(timeline) != 10 {
		t.Fatalf("expected 10 segments, got %d", len(timeline))
	}
}

func TestSchedulePriority(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      core.Timeline
	}{
		{
			name:      "same arrival lower number first",
			processes: []core.Process{proc("P1", 0, 4, 2), proc("P2", 0, 3, 1)},
			want:      core.Timeline{seg("P2", 0, 3), seg("P1", 3, 7)},
		},
		{
			name: "non-preemptive",
			processes: []core.Process{
				proc("P1", 0, 8, 2), proc("P2", 1, 4, 1), proc("P3", 2, 9, 3), proc("P4", 3, 5, 2), proc("P5", 4, 2, 1),
			},
			want: core.Timeline{seg("P1", 0, 8), seg("P2", 8, 12), seg("P5", 12, 14), seg("P4", 14, 19), seg("P3", 19, 28)},
		},
		{
			name:      "equal priority goes to earlier arrival",
			processes: []core.Process{proc("X", 0, 5, 0), proc("Z", 2, 1, 1), proc("Y", 1, 1, 1)},
			want:      core.Timeline{seg("X", 0, 5), seg("Y", 5, 6), seg("Z", 6, 7)},
		},
		{
			name:      "equal priority and arrival goes to smaller pid",
			processes: []core.Process{proc("B", 0, 1, 1), proc("A", 0, 1, 1)},
			want:      core.Timeline{seg("A", 0, 1), seg("B", 1, 2)},
		},
		{
			name:      "negative priorities",
			processes: []core.Process{proc("A", 0, 1, 0), proc("B", 0, 1, -3)},
			want:      core.Timeline{seg("B", 0, 1), seg("A", 1, 2)},
		},
		{
			name:      "idle jump",
			processes: []core.Process{proc("A", 4, 2, 5)},
			want:      core.Timeline{seg(core.IdlePID, 0, 4), seg("A", 4, 6)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SchedulePriority(tt.processes)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("timeline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchedulersDoNotMutateInput(t *testing.T) {
	processes := []core.Process{proc("P3", 4, 2, 1), proc("P1", 0, 5, 3), proc("P2", 1, 3, 2)}
	original := core.CloneProcesses(processes)

	ScheduleFirstComeFirstServe(processes)
	ScheduleShortestJobFirst(processes)
	SchedulePriority(processes)
	if _, err := ScheduleRoundRobin(processes, 1, 0); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(original, processes); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}
