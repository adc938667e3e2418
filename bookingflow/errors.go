package bookingflow

import "errors"

// StepError reports a blocked transition or an invalid selection. It is
// a plain result carrying a human-readable reason for the presentation
// layer; the flow never panics across its boundary.
type StepError struct {
	Step   int
	Reason string
}

func (e *StepError) Error() string {
	return e.Reason
}

func stepErr(step int, reason string) *StepError {
	return &StepError{Step: step, Reason: reason}
}

var (
	ErrNoActiveFlow = errors.New("no booking in progress")
	ErrSlotTaken    = errors.New("this tutor already has a session booked at that date and time")
)
