package moderation

import (
	"testing"

	"sportlebanon/internal/admins"
)

func TestAllowed_TransitionsOpenToAnyAdmin(t *testing.T) {
	transitions := []Action{
		ActionApprove, ActionReject, ActionSuspend, ActionReactivate,
		ActionDisable, ActionBlock, ActionConfirm, ActionCancel,
		ActionComplete, ActionDispute, ActionResolveDispute,
	}
	for _, act := range transitions {
		if !Allowed(act, admins.RoleAdmin) {
			t.Fatalf("expected %s to be allowed for admin", act)
		}
		if !Allowed(act, admins.RoleSuperAdmin) {
			t.Fatalf("expected %s to be allowed for super_admin", act)
		}
	}
}

func TestAllowed_CommissionRateRequiresSuperAdmin(t *testing.T) {
	if Allowed(ActionSetCommissionRate, admins.RoleAdmin) {
		t.Fatalf("expected set-commission-rate to be denied for admin")
	}
	if !Allowed(ActionSetCommissionRate, admins.RoleSuperAdmin) {
		t.Fatalf("expected set-commission-rate to be allowed for super_admin")
	}
}

func TestAllowed_UnknownActionOrRole(t *testing.T) {
	if Allowed(Action("drop-tables"), admins.RoleSuperAdmin) {
		t.Fatalf("expected unknown action to be denied")
	}
	if Allowed(ActionApprove, admins.Role("viewer")) {
		t.Fatalf("expected unknown role to be denied")
	}
}
