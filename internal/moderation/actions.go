package moderation

import (
	"fmt"
	"strings"

	"sportlebanon/internal/booking"
	"sportlebanon/internal/field"
	"sportlebanon/internal/owner"
)

type Kind string

const (
	KindOwners   Kind = "owners"
	KindFields   Kind = "fields"
	KindBookings Kind = "bookings"
)

type Action string

const (
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionSuspend        Action = "suspend"
	ActionReactivate     Action = "reactivate"
	ActionDisable        Action = "disable"
	ActionBlock          Action = "block"
	ActionConfirm        Action = "confirm"
	ActionCancel         Action = "cancel"
	ActionComplete       Action = "complete"
	ActionDispute        Action = "dispute"
	ActionResolveDispute Action = "resolve-dispute"

	// ActionSetCommissionRate is the settings mutation, not a URL transition
	// action; it shares the permission table with the transitions.
	ActionSetCommissionRate Action = "set-commission-rate"
)

// ParseAction validates a URL action segment. The settings mutation is not a
// URL transition action and is rejected here.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionApprove, ActionReject, ActionSuspend, ActionReactivate,
		ActionDisable, ActionBlock, ActionConfirm, ActionCancel,
		ActionComplete, ActionDispute, ActionResolveDispute:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown action: %s", s)
	}
}

// Target status per entity kind. An action missing from a kind's table is not
// supported for that kind. resolve-dispute is absent on purpose: its target
// comes from the request and is validated by booking.ParseResolution.
var ownerTargets = map[Action]owner.Status{
	ActionApprove:    owner.StatusApproved,
	ActionReject:     owner.StatusRejected,
	ActionSuspend:    owner.StatusSuspended,
	ActionReactivate: owner.StatusApproved,
}

var fieldTargets = map[Action]field.Status{
	ActionApprove:    field.StatusApproved,
	ActionReject:     field.StatusRejected,
	ActionDisable:    field.StatusDisabled,
	ActionBlock:      field.StatusBlocked,
	ActionReactivate: field.StatusApproved,
}

var bookingTargets = map[Action]booking.Status{
	ActionConfirm:  booking.StatusConfirmed,
	ActionCancel:   booking.StatusCancelled,
	ActionComplete: booking.StatusCompleted,
	ActionDispute:  booking.StatusDisputed,
}

// reasonRequired lists the punitive actions that must carry an explanation.
var reasonRequired = map[Action]bool{
	ActionReject:  true,
	ActionSuspend: true,
	ActionBlock:   true,
}

func ReasonRequired(act Action) bool {
	return reasonRequired[act]
}

// AuditName builds the ledger action label, e.g. "owner_approve",
// "booking_resolve_dispute".
func AuditName(kind Kind, act Action) string {
	singular := strings.TrimSuffix(string(kind), "s")
	return singular + "_" + strings.ReplaceAll(string(act), "-", "_")
}
