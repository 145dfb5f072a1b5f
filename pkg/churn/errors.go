package churn

import "errors"

var (
	// ErrUnknownReason indicates a reason outside the closed set.
	ErrUnknownReason = errors.New("unknown cancellation reason")

	// ErrNoReasonSelected indicates an offer-step call before reason
	// capture.
	ErrNoReasonSelected = errors.New("no cancellation reason selected")

	// ErrFlowClosed indicates the flow already reached one of its two
	// terminal exits.
	ErrFlowClosed = errors.New("churn flow already closed")
)
