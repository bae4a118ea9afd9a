package field

import "testing"

func TestCanTransition_Table(t *testing.T) {
	all := []Status{StatusPending, StatusApproved, StatusRejected, StatusDisabled, StatusBlocked}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusApproved}:  true,
		{StatusPending, StatusRejected}:  true,
		{StatusApproved, StatusDisabled}: true,
		{StatusApproved, StatusBlocked}:  true,
		{StatusRejected, StatusApproved}: true,
		{StatusDisabled, StatusApproved}: true,
		{StatusBlocked, StatusApproved}:  true,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Fatalf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestIsActive_DerivedFromStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusDisabled, StatusBlocked} {
		want := s == StatusApproved
		if got := IsActive(s); got != want {
			t.Fatalf("IsActive(%s): expected %v, got %v", s, want, got)
		}
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	if _, err := ParseStatus("archived"); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
}

func TestSnapshot_CapturesActiveFlag(t *testing.T) {
	f := &Field{ApprovalStatus: StatusApproved, IsActive: true}
	snap := f.Snapshot()
	f.ApprovalStatus = StatusBlocked
	f.IsActive = false
	if snap.Status != StatusApproved || !snap.IsActive {
		t.Fatalf("snapshot mutated along with the entity: %+v", snap)
	}
}
