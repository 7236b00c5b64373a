package schedulers

import "errors"

var (
	// ErrUnknownAlgorithm is returned for an algorithm name outside FCFS, SJF,
	// RR/ROUNDROBIN and PRIORITY. Its message is shown to clients verbatim.
	ErrUnknownAlgorithm = errors.New("Unknown algorithm")
	ErrInvalidBurst     = errors.New("burst time must be a positive number")
	ErrInvalidQuantum   = errors.New("time quantum must be a positive number")
	ErrTooManyProcesses = errors.New("too many processes")
	ErrTimelineTooLong  = errors.New("schedule exceeds the maximum number of timeline segments")
	ErrTimeOverflow     = errors.New("schedule times exceed the representable range")
)
