package record

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusUnderConsideration, true},
		{StatusPending, StatusPending, false},
		{StatusUnderConsideration, StatusApproved, true},
		{StatusUnderConsideration, StatusRejected, true},
		{StatusUnderConsideration, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusUnderConsideration, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Fatalf("%s -> %s: got %v want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("under_consideration"); err != nil || s != StatusUnderConsideration {
		t.Fatalf("unexpected parse result: %s %v", s, err)
	}
	if _, err := ParseStatus("accepted"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestActiveStatuses(t *testing.T) {
	if StatusRejected.Active() {
		t.Fatalf("rejected must not block resubmission")
	}
	for _, s := range []Status{StatusPending, StatusUnderConsideration, StatusApproved} {
		if !s.Active() {
			t.Fatalf("%s should be active", s)
		}
	}
}

func TestResolvedStatuses(t *testing.T) {
	for _, s := range []Status{StatusApproved, StatusRejected} {
		if !s.Resolved() {
			t.Fatalf("%s should be resolved", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusUnderConsideration} {
		if s.Resolved() {
			t.Fatalf("%s should not be resolved", s)
		}
	}
}
