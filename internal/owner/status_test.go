package owner

import "testing"

func TestCanTransition_AllowedEdges(t *testing.T) {
	allowed := [][2]Status{
		{StatusPendingReview, StatusApproved},
		{StatusPendingReview, StatusRejected},
		{StatusApproved, StatusSuspended},
		{StatusSuspended, StatusApproved},
	}
	for _, e := range allowed {
		if !CanTransition(e[0], e[1]) {
			t.Fatalf("expected %s -> %s to be allowed", e[0], e[1])
		}
	}
}

func TestCanTransition_EverythingElseFails(t *testing.T) {
	all := []Status{StatusPendingReview, StatusApproved, StatusRejected, StatusSuspended}
	allowed := map[[2]Status]bool{
		{StatusPendingReview, StatusApproved}: true,
		{StatusPendingReview, StatusRejected}: true,
		{StatusApproved, StatusSuspended}:     true,
		{StatusSuspended, StatusApproved}:     true,
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

func TestCanTransition_RejectedIsTerminal(t *testing.T) {
	for _, to := range []Status{StatusPendingReview, StatusApproved, StatusRejected, StatusSuspended} {
		if CanTransition(StatusRejected, to) {
			t.Fatalf("expected rejected -> %s to fail", to)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("approved"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseStatus("banned"); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
}

func TestSnapshot_IsValueCopy(t *testing.T) {
	o := &Owner{Status: StatusPendingReview}
	snap := o.Snapshot()
	o.Status = StatusApproved
	if snap.Status != StatusPendingReview {
		t.Fatalf("snapshot mutated along with the entity")
	}
}
