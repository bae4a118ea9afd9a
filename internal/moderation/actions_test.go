package moderation

import (
	"testing"

	"sportlebanon/internal/field"
	"sportlebanon/internal/owner"
)

func TestReasonRequired(t *testing.T) {
	required := []Action{ActionReject, ActionSuspend, ActionBlock}
	for _, act := range required {
		if !ReasonRequired(act) {
			t.Fatalf("expected reason to be required for %s", act)
		}
	}
	optional := []Action{ActionApprove, ActionReactivate, ActionConfirm, ActionCancel, ActionResolveDispute}
	for _, act := range optional {
		if ReasonRequired(act) {
			t.Fatalf("expected reason to be optional for %s", act)
		}
	}
}

func TestAuditName(t *testing.T) {
	if got := AuditName(KindOwners, ActionApprove); got != "owner_approve" {
		t.Fatalf("expected owner_approve, got %q", got)
	}
	if got := AuditName(KindBookings, ActionResolveDispute); got != "booking_resolve_dispute" {
		t.Fatalf("expected booking_resolve_dispute, got %q", got)
	}
	if got := AuditName(KindFields, ActionBlock); got != "field_block" {
		t.Fatalf("expected field_block, got %q", got)
	}
}

func TestTargetTables_KindIsolation(t *testing.T) {
	// Booking-only actions must not leak into the owner or field tables.
	for _, act := range []Action{ActionConfirm, ActionCancel, ActionComplete, ActionDispute} {
		if _, ok := ownerTargets[act]; ok {
			t.Fatalf("did not expect %s in owner targets", act)
		}
		if _, ok := fieldTargets[act]; ok {
			t.Fatalf("did not expect %s in field targets", act)
		}
	}
	// Suspension is an owner concept; disable/block are field concepts.
	if _, ok := fieldTargets[ActionSuspend]; ok {
		t.Fatalf("did not expect suspend in field targets")
	}
	if _, ok := ownerTargets[ActionBlock]; ok {
		t.Fatalf("did not expect block in owner targets")
	}
}

func TestTargetTables_Reactivation(t *testing.T) {
	if ownerTargets[ActionReactivate] != owner.StatusApproved {
		t.Fatalf("owner reactivate must target approved")
	}
	if fieldTargets[ActionReactivate] != field.StatusApproved {
		t.Fatalf("field reactivate must target approved")
	}
}
