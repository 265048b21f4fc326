package models

import "fmt"

// Status is the stage an application sits at in the pipeline.
//
// Valid status graph:
//
//	Applied ──► Interviewing ──► Offer ──► Accepted
//	    │             │            │
//	    └─────────────┴────────────┴──► Rejected
//
// Accepted and Rejected are terminal states.
type Status string

const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusAccepted     Status = "Accepted"
	StatusRejected     Status = "Rejected"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusApplied:      {StatusInterviewing, StatusRejected},
	StatusInterviewing: {StatusOffer, StatusRejected},
	StatusOffer:        {StatusAccepted, StatusRejected},
	// Accepted and Rejected are terminal — no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusAccepted, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state — no outgoing transitions
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true when status accepts no further transitions.
func IsTerminal(s Status) bool {
	_, ok := validTransitions[s]
	return !ok
}
