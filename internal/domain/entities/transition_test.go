package entities

import "testing"

func TestTransition(t *testing.T) {
	cases := []struct {
		name    string
		current BookingStatus
		event   BookingEvent
		wantOK  bool
		next    BookingStatus
	}{
		{name: "pending approve", current: BookingStatusPending, event: EventApprove, wantOK: true, next: BookingStatusApproved},
		{name: "pending counter", current: BookingStatusPending, event: EventCounter, wantOK: true, next: BookingStatusCountered},
		{name: "pending reject", current: BookingStatusPending, event: EventReject, wantOK: true, next: BookingStatusRejected},
		{name: "lead approve", current: BookingStatusLead, event: EventApprove, wantOK: true, next: BookingStatusApproved},
		{name: "lead counter", current: BookingStatusLead, event: EventCounter, wantOK: true, next: BookingStatusCountered},
		{name: "countered approve", current: BookingStatusCountered, event: EventApprove, wantOK: true, next: BookingStatusApproved},
		{name: "countered reject", current: BookingStatusCountered, event: EventReject, wantOK: true, next: BookingStatusRejected},
		{name: "countered cannot re-counter", current: BookingStatusCountered, event: EventCounter, wantOK: false},
		{name: "approved is terminal for approve", current: BookingStatusApproved, event: EventApprove, wantOK: false},
		{name: "approved cannot be rejected", current: BookingStatusApproved, event: EventReject, wantOK: false},
		{name: "rejected is terminal", current: BookingStatusRejected, event: EventApprove, wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := Transition(tc.current, tc.event)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if !tc.wantOK {
				return
			}
			if res.Next != tc.next {
				t.Fatalf("expected next=%s, got %s", tc.next, res.Next)
			}
			if len(res.Effects) == 0 {
				t.Fatalf("expected side effects for %s/%s", tc.current, tc.event)
			}
		})
	}
}

func TestTransitionEffects(t *testing.T) {
	res, ok := Transition(BookingStatusPending, EventApprove)
	if !ok {
		t.Fatalf("expected transition")
	}
	want := []SideEffect{EffectStageWon, EffectProvisionConversion, EffectNotifyApproved}
	if len(res.Effects) != len(want) {
		t.Fatalf("expected %d effects, got %d", len(want), len(res.Effects))
	}
	for i, e := range want {
		if res.Effects[i] != e {
			t.Fatalf("effect %d: expected %s, got %s", i, e, res.Effects[i])
		}
	}
}
