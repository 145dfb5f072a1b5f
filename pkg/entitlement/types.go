package entitlement

import (
	"context"
	"time"
)

// PlanType is the nominal purchased tier of the installation.
type PlanType string

const (
	PlanFree    PlanType = "free"
	PlanStart   PlanType = "start"
	PlanPro     PlanType = "pro"
	PlanPremium PlanType = "premium"
)

// Valid reports whether p is one of the known plan labels.
func (p PlanType) Valid() bool {
	switch p {
	case PlanFree, PlanStart, PlanPro, PlanPremium:
		return true
	}
	return false
}

// Status is the enforced lifecycle state of the subscription.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusTrial    Status = "trial"
	StatusActive   Status = "active"
	// StatusCanceled is written only by the external payment/webhook
	// collaborator. No in-scope transition produces it, but every store must
	// round-trip it.
	StatusCanceled Status = "canceled"
	StatusGrace    Status = "grace"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusInactive, StatusTrial, StatusActive, StatusCanceled, StatusGrace:
		return true
	}
	return false
}

const (
	// TrialDuration is the fixed trial window opened by StartTrial.
	TrialDuration = 7 * 24 * time.Hour

	// GraceDuration is the fixed window between a confirmed cancellation and
	// final account downgrade. Grace is a data retention courtesy, not a
	// continued-access courtesy: paid access drops immediately on
	// cancellation.
	GraceDuration = 3 * 24 * time.Hour
)

// EventTracker records analytics events emitted by lifecycle operations.
// Implementations must be fire-and-forget: tracking failures must never
// propagate into entitlement decisions. A nil tracker disables tracking.
type EventTracker interface {
	Track(ctx context.Context, name string, metadata map[string]any)
}
