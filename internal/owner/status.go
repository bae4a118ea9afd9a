package owner

import "fmt"

type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusSuspended     Status = "suspended"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPendingReview, StatusApproved, StatusRejected, StatusSuspended:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown owner status: %s", s)
	}
}

var allowedTransitions = map[Status]map[Status]bool{
	StatusPendingReview: {StatusApproved: true, StatusRejected: true},
	StatusApproved:      {StatusSuspended: true},
	StatusSuspended:     {StatusApproved: true},
	StatusRejected:      {}, // terminal; re-application creates a new registration
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}
