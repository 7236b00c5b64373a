package requests

// Job is a raw process descriptor as received from a client. Every field is
// optional and may hold any JSON value; the schedulers coerce them.
type Job struct {
	ProcessId   any `json:"pid,omitempty"`
	ArrivalTime any `json:"arrival,omitempty"`
	BurstTime   any `json:"burst,omitempty"`
	Priority    any `json:"priority,omitempty"`
}

type ScheduleRequests struct {
	Jobs      []Job  `json:"processes"`
	Algorithm string `json:"algorithm,omitempty"`
	Quantum   any    `json:"quantum,omitempty"`
}
