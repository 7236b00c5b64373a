package core

import "fmt"

// IdlePID marks a segment during which no process held the cpu.
const IdlePID = "IDLE"

// Segment is one contiguous interval of the gantt chart.
type Segment struct {
	PID   string  `json:"pid"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (s Segment) IsIdle() bool { return s.PID == IdlePID }

func (s Segment) Duration() float64 { return s.End - s.Start }

// Timeline is an ordered gantt chart. Consecutive segments tile: each one
// starts where the previous one ended.
type Timeline []Segment

// Run appends a segment for pid starting at start and returns its end.
func (t *Timeline) Run(pid string, start, length float64) float64 {
	end := start + length
	*t = append(*t, Segment{PID: pid, Start: start, End: end})
	return end
}

// IdleUntil appends an idle segment when clock is before until and returns
// the clock to continue from.
func (t *Timeline) IdleUntil(clock, until float64) float64 {
	if clock >= until {
		return clock
	}
	*t = append(*t, Segment{PID: IdlePID, Start: clock, End: until})
	return until
}

func (t Timeline) Clone() Timeline {
	if t == nil {
		return nil
	}
	out := make(Timeline, len(t))
	copy(out, t)
	return out
}

// Validate reports the first segment that breaks ordering or tiling.
func (t Timeline) Validate() error {
	for i, segment := range t {
		if segment.End < segment.Start {
			return fmt.Errorf("segment %d (%s) ends at %v before it starts at %v", i, segment.PID, segment.End, segment.Start)
		}
		if i > 0 && t[i-1].End != segment.Start {
			return fmt.Errorf("segment %d (%s) starts at %v but previous ends at %v", i, segment.PID, segment.Start, t[i-1].End)
		}
	}
	return nil
}
