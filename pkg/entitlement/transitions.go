package entitlement

import "fmt"

// Action identifies an operation that may change the subscription status.
// The transition table below is the single validated choke point for status
// changes: field-level mutation of Status outside this table is a bug.
type Action string

const (
	// ActionStartTrial opens the 7-day trial window.
	ActionStartTrial Action = "start_trial"
	// ActionActivate is driven by the external payment collaborator on
	// successful payment confirmation.
	ActionActivate Action = "activate"
	// ActionAcceptOffer is the retention-offer acceptance path of the churn
	// flow. From grace it reactivates the record; mid-flow (before grace is
	// committed) it leaves the current status in place.
	ActionAcceptOffer Action = "accept_offer"
	// ActionConfirmCancel commits a cancellation into the grace window.
	ActionConfirmCancel Action = "confirm_cancel"
	// ActionCancel finalizes a cancellation. Reserved for the external
	// payment/webhook collaborator; no in-scope flow fires it.
	ActionCancel Action = "cancel"
)

// transitions is the full from-state × action → to-state table. Rows for
// ActionActivate and ActionCancel document the collaborator-owned edges so
// the machine reads complete even though this engine never fires them on
// its own.
var transitions = map[Status]map[Action]Status{
	StatusInactive: {
		ActionStartTrial: StatusTrial,
	},
	StatusTrial: {
		ActionActivate:      StatusActive,
		ActionAcceptOffer:   StatusTrial, // offer accepted before any cancellation committed
		ActionConfirmCancel: StatusGrace,
	},
	StatusActive: {
		ActionAcceptOffer:   StatusActive, // no-op, record stays active
		ActionConfirmCancel: StatusGrace,
		ActionCancel:        StatusCanceled,
	},
	StatusGrace: {
		ActionAcceptOffer: StatusActive, // reactivation inside the grace window
		ActionActivate:    StatusActive,
		ActionCancel:      StatusCanceled,
	},
}

// CanTransition reports whether firing action from the given status is a
// legal edge of the lifecycle machine.
func CanTransition(from Status, action Action) bool {
	_, ok := transitions[from][action]
	return ok
}

// NextStatus resolves the target status for an action, or
// ErrInvalidTransition when the edge does not exist. The record itself is
// never touched here; callers apply the returned status together with the
// action's field mutations.
func NextStatus(from Status, action Action) (Status, error) {
	to, ok := transitions[from][action]
	if !ok {
		return from, fmt.Errorf("%w: %s on %q", ErrInvalidTransition, action, from)
	}
	return to, nil
}
