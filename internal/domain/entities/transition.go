package entities

// BookingEvent identifies an admin action against a booking request.

type BookingEvent string

const (
	EventApprove BookingEvent = "approve"
	EventCounter BookingEvent = "counter"
	EventReject  BookingEvent = "reject"
)

// SideEffect is a command a transition asks the caller to perform after the
// booking row itself has been written. Effects are returned as data so the
// transition table can be exercised without a live store; the lifecycle
// usecase maps each effect to the collaborator that executes it.

type SideEffect string

const (
	EffectStageWon            SideEffect = "pipeline.set_stage.won"
	EffectStageLost           SideEffect = "pipeline.set_stage.lost"
	EffectStageNegotiation    SideEffect = "pipeline.set_stage.negotiation"
	EffectProvisionConversion SideEffect = "conversion.provision"
	EffectNotifyApproved      SideEffect = "notify.booking_approved"
	EffectNotifyCountered     SideEffect = "notify.booking_countered"
	EffectNotifyRejected      SideEffect = "notify.booking_rejected"
)

// TransitionResult is the outcome of applying an event to a status.
type TransitionResult struct {
	Next    BookingStatus
	Effects []SideEffect
}

// transitions is the complete status machine for booking requests. Archive
// and permanent deletion are orthogonal flags and intentionally absent here.
var transitions = map[BookingStatus]map[BookingEvent]TransitionResult{
	BookingStatusPending: {
		EventApprove: {Next: BookingStatusApproved, Effects: approvalEffects},
		EventCounter: {Next: BookingStatusCountered, Effects: counterEffects},
		EventReject:  {Next: BookingStatusRejected, Effects: rejectEffects},
	},
	BookingStatusLead: {
		EventApprove: {Next: BookingStatusApproved, Effects: approvalEffects},
		EventCounter: {Next: BookingStatusCountered, Effects: counterEffects},
		EventReject:  {Next: BookingStatusRejected, Effects: rejectEffects},
	},
	BookingStatusCountered: {
		EventApprove: {Next: BookingStatusApproved, Effects: approvalEffects},
		EventReject:  {Next: BookingStatusRejected, Effects: rejectEffects},
	},
}

var (
	approvalEffects = []SideEffect{EffectStageWon, EffectProvisionConversion, EffectNotifyApproved}
	counterEffects  = []SideEffect{EffectStageNegotiation, EffectNotifyCountered}
	rejectEffects   = []SideEffect{EffectStageLost, EffectNotifyRejected}
)

// Transition applies event to the current status and returns the next status
// plus the side effects the caller must run. ok is false when the event is
// not permitted from the current status.
func Transition(current BookingStatus, event BookingEvent) (TransitionResult, bool) {
	byEvent, found := transitions[current]
	if !found {
		return TransitionResult{}, false
	}
	res, found := byEvent[event]
	return res, found
}
