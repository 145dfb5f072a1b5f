package churn

import (
	"context"
	"log/slog"
	"time"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

// Engine is the slice of the entitlement service the flow mutates through.
// *entitlement.Service satisfies it.
type Engine interface {
	GetSubscription(ctx context.Context) *entitlement.Subscription
	SaveSubscription(ctx context.Context, sub *entitlement.Subscription) error
}

// EventTracker records analytics events. A nil tracker disables tracking.
type EventTracker interface {
	Track(ctx context.Context, name string, metadata map[string]any)
}

// DowngradeFunc drops the owning entity's paid flag. ConfirmCancel invokes
// it immediately so access downgrades before the grace window elapses.
type DowngradeFunc func(ctx context.Context) error

// Flow drives one cancellation attempt through reason capture and the
// retention offer. Not safe for concurrent use; it models a single modal.
type Flow struct {
	engine    Engine
	tracker   EventTracker
	downgrade DowngradeFunc
	offer     string
	log       *slog.Logger
	now       func() time.Time

	step   step
	reason Reason
}

// FlowOption configures a Flow during construction.
type FlowOption func(*Flow)

// WithDowngrade registers the hook that revokes the owning entity's paid
// access on a confirmed cancellation.
func WithDowngrade(fn DowngradeFunc) FlowOption {
	return func(f *Flow) {
		f.downgrade = fn
	}
}

// WithOffer overrides the retention offer identifier.
func WithOffer(id string) FlowOption {
	return func(f *Flow) {
		if id != "" {
			f.offer = id
		}
	}
}

// WithLogger sets the logger used for swallowed persistence and downgrade
// failures.
func WithLogger(log *slog.Logger) FlowOption {
	return func(f *Flow) {
		if log != nil {
			f.log = log
		}
	}
}

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) FlowOption {
	return func(f *Flow) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFlow creates a flow at the reason-capture step. Panics on a nil
// engine to fail fast; tracker may be nil.
func NewFlow(engine Engine, tracker EventTracker, opts ...FlowOption) *Flow {
	if engine == nil {
		panic("churn: engine is required")
	}
	f := &Flow{
		engine:  engine,
		tracker: tracker,
		offer:   OfferHalfOffTwoMonths,
		log:     slog.Default(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Reason returns the captured reason, valid once the flow passed the
// reason step.
func (f *Flow) Reason() Reason {
	return f.reason
}

// Closed reports whether the flow reached a terminal exit.
func (f *Flow) Closed() bool {
	return f.step == stepClosed
}

// SelectReason captures the user's cancellation reason and moves the flow
// to the offer step. The persisted record is untouched here. The
// canceled_subscription event fires immediately: it logs intent, not the
// final action.
func (f *Flow) SelectReason(ctx context.Context, reason Reason) error {
	if f.step == stepClosed {
		return ErrFlowClosed
	}
	if !reason.Valid() {
		return ErrUnknownReason
	}

	f.reason = reason
	f.step = stepOffer

	f.track(ctx, EventCanceledSubscription, map[string]any{
		"reason": string(reason),
	})
	return nil
}

// AcceptOffer takes the retention incentive: the record is reactivated in
// place (a grace record returns to active, anything else keeps its current
// status) and the churn reason is cleared. The record never passes through
// grace on this path, and no discount is applied here; billing owns that.
func (f *Flow) AcceptOffer(ctx context.Context) (*entitlement.Subscription, error) {
	if f.step == stepClosed {
		return nil, ErrFlowClosed
	}
	if f.step != stepOffer {
		return nil, ErrNoReasonSelected
	}

	sub := f.engine.GetSubscription(ctx)
	if next, err := entitlement.NextStatus(sub.Status, entitlement.ActionAcceptOffer); err == nil {
		sub.Status = next
	}
	sub.ChurnReason = nil

	f.save(ctx, sub)
	f.track(ctx, EventChurnPrevented, map[string]any{
		"reason": string(f.reason),
		"offer":  f.offer,
	})

	f.step = stepClosed
	return sub, nil
}

// ConfirmCancel commits the cancellation: the record transitions to grace
// with a 3-day window and the captured reason, and the downgrade hook
// revokes paid access immediately.
func (f *Flow) ConfirmCancel(ctx context.Context) (*entitlement.Subscription, error) {
	if f.step == stepClosed {
		return nil, ErrFlowClosed
	}
	if f.step != stepOffer {
		return nil, ErrNoReasonSelected
	}

	sub := f.engine.GetSubscription(ctx)
	next, err := entitlement.NextStatus(sub.Status, entitlement.ActionConfirmCancel)
	if err != nil {
		return sub, err
	}

	end := f.now().Add(entitlement.GraceDuration)
	reason := string(f.reason)
	sub.Status = next
	sub.SubscriptionEnd = &end
	sub.ChurnReason = &reason

	f.save(ctx, sub)

	if f.downgrade != nil {
		if err := f.downgrade(ctx); err != nil {
			f.log.WarnContext(ctx, "downgrade hook failed", "error", err)
		}
	}

	f.track(ctx, EventCanceledSubscription, map[string]any{
		"reason":         reason,
		"accepted_offer": false,
	})

	f.step = stepClosed
	return sub, nil
}

func (f *Flow) save(ctx context.Context, sub *entitlement.Subscription) {
	if err := f.engine.SaveSubscription(ctx, sub); err != nil {
		f.log.WarnContext(ctx, "churn flow save failed, continuing with in-memory record", "error", err)
	}
}

func (f *Flow) track(ctx context.Context, name string, metadata map[string]any) {
	if f.tracker == nil {
		return
	}
	f.tracker.Track(ctx, name, metadata)
}
