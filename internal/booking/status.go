package booking

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusDisputed  Status = "disputed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusDisputed:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// A dispute can be raised from any state except cancelled (the money has
// already been returned) and disputed itself. Disputes resolve to exactly
// confirmed or cancelled.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true, StatusDisputed: true},
	StatusConfirmed: {StatusCancelled: true, StatusCompleted: true, StatusDisputed: true},
	StatusCompleted: {StatusDisputed: true},
	StatusDisputed:  {StatusCancelled: true, StatusConfirmed: true},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// ParseResolution validates the outcome of a dispute resolution.
func ParseResolution(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("dispute resolution must be confirmed or cancelled, got: %s", s)
	}
}
