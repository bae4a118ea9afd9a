package field

import "fmt"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusDisabled Status = "disabled"
	StatusBlocked  Status = "blocked"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusDisabled, StatusBlocked:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown field status: %s", s)
	}
}

// rejected, disabled and blocked are all recoverable back to approved by an
// administrator reactivation.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:  {StatusApproved: true, StatusRejected: true},
	StatusApproved: {StatusDisabled: true, StatusBlocked: true},
	StatusRejected: {StatusApproved: true},
	StatusDisabled: {StatusApproved: true},
	StatusBlocked:  {StatusApproved: true},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// IsActive derives the listing visibility flag from the approval status.
func IsActive(s Status) bool {
	return s == StatusApproved
}
