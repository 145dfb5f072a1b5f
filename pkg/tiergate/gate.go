package tiergate

import (
	"context"
	"sync"
	"time"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

// EventFeatureLocked is emitted on every denied gate check.
const EventFeatureLocked = "feature_locked_attempt"

// SubscriptionSource yields the current record for a gating decision.
// *entitlement.Service satisfies it.
type SubscriptionSource interface {
	GetSubscription(ctx context.Context) *entitlement.Subscription
}

// EventTracker records analytics events. A nil tracker disables tracking.
type EventTracker interface {
	Track(ctx context.Context, name string, metadata map[string]any)
}

// Denied is the UI state recorded by the most recent denied check.
type Denied struct {
	Feature  string
	Required entitlement.PlanType
}

// Gate performs tier checks against the live subscription record.
type Gate struct {
	subs    SubscriptionSource
	tracker EventTracker
	onDeny  func(Denied)
	now     func() time.Time

	mu     sync.Mutex
	denied *Denied
}

// GateOption configures a Gate during construction.
type GateOption func(*Gate)

// WithPromptCallback registers a callback invoked on every deny, letting a
// UI collaborator raise its upgrade prompt without polling LastDenied.
func WithPromptCallback(fn func(Denied)) GateOption {
	return func(g *Gate) {
		g.onDeny = fn
	}
}

// WithClock overrides the time source used for trial-window checks. Wire
// the engine's clock here so gating and trial arithmetic agree on "now".
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGate creates a Gate. Panics on a nil subscription source to fail fast
// during initialization; tracker may be nil.
func NewGate(subs SubscriptionSource, tracker EventTracker, opts ...GateOption) *Gate {
	if subs == nil {
		panic("tiergate: subscription source is required")
	}
	g := &Gate{
		subs:    subs,
		tracker: tracker,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CheckAccess reports whether the feature is available at or above minTier.
// The allow path is side-effect-free. A deny records the blocked feature,
// emits feature_locked_attempt with the nominal plan as "current", and
// signals the prompt callback.
func (g *Gate) CheckAccess(ctx context.Context, feature string, minTier entitlement.PlanType) bool {
	sub := g.subs.GetSubscription(ctx)

	required, known := RequiredLevel(minTier)
	if known && Level(EffectiveTier(sub, g.now())) >= required {
		return true
	}

	denied := Denied{Feature: feature, Required: minTier}

	g.mu.Lock()
	g.denied = &denied
	g.mu.Unlock()

	if g.tracker != nil {
		g.tracker.Track(ctx, EventFeatureLocked, map[string]any{
			"feature":  feature,
			"required": string(minTier),
			"current":  string(sub.PlanType),
		})
	}
	if g.onDeny != nil {
		g.onDeny(denied)
	}
	return false
}

// CheckPro is sugar for CheckAccess(feature, "pro").
func (g *Gate) CheckPro(ctx context.Context, feature string) bool {
	return g.CheckAccess(ctx, feature, entitlement.PlanPro)
}

// LastDenied returns the UI state left by the most recent denied check.
func (g *Gate) LastDenied() (Denied, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.denied == nil {
		return Denied{}, false
	}
	return *g.denied, true
}

// ClearDenied resets the denied UI state, typically after the upgrade
// prompt is dismissed.
func (g *Gate) ClearDenied() {
	g.mu.Lock()
	g.denied = nil
	g.mu.Unlock()
}
