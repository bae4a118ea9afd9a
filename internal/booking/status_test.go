package booking

import "testing"

func TestCanTransition_Table(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusDisputed}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusPending, StatusDisputed}:    true,
		{StatusConfirmed, StatusCancelled}: true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusDisputed}:  true,
		{StatusCompleted, StatusDisputed}:  true,
		{StatusDisputed, StatusCancelled}:  true,
		{StatusDisputed, StatusConfirmed}:  true,
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

func TestCanTransition_CancelledHasNoOutgoingEdges(t *testing.T) {
	for _, to := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusDisputed} {
		if CanTransition(StatusCancelled, to) {
			t.Fatalf("expected cancelled -> %s to fail", to)
		}
	}
}

func TestParseResolution(t *testing.T) {
	if _, err := ParseResolution("confirmed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseResolution("cancelled"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"completed", "pending", "disputed", "refunded", ""} {
		if _, err := ParseResolution(s); err == nil {
			t.Fatalf("expected resolution %q to fail", s)
		}
	}
}
