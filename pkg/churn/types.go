package churn

// Reason is one of the fixed cancellation reasons a user can select.
type Reason string

const (
	ReasonExpensive      Reason = "expensive"
	ReasonNotUsing       Reason = "not_using"
	ReasonMissingFeature Reason = "missing_feature"
	ReasonOther          Reason = "other"
)

// Valid reports whether r belongs to the closed reason set.
func (r Reason) Valid() bool {
	switch r {
	case ReasonExpensive, ReasonNotUsing, ReasonMissingFeature, ReasonOther:
		return true
	}
	return false
}

// Reasons lists the closed reason set in presentation order.
func Reasons() []Reason {
	return []Reason{ReasonExpensive, ReasonNotUsing, ReasonMissingFeature, ReasonOther}
}

// OfferHalfOffTwoMonths identifies the fixed retention incentive presented
// at the offer step: 50% off for 2 months.
const OfferHalfOffTwoMonths = "retention_50_2mo"

// Analytics event names emitted by the flow.
const (
	// EventCanceledSubscription is emitted twice on a completed
	// cancellation: once at reason capture (intent) and once at
	// confirmation (with accepted_offer:false).
	EventCanceledSubscription = "canceled_subscription"
	// EventChurnPrevented is emitted when the retention offer is accepted.
	EventChurnPrevented = "churn_prevented"
)

// step tracks the flow's UI protocol position.
type step int

const (
	stepReason step = iota
	stepOffer
	stepClosed
)
