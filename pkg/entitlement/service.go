package entitlement

import (
	"context"
	"log/slog"
	"time"
)

// Analytics event names emitted by lifecycle operations.
const (
	EventStartedTrial = "started_trial"
)

// Service exposes the lifecycle operations over the persisted record. All
// reads honor the never-fail contract (corruption and backend outages
// degrade to defaults); all writes are best effort (failures are logged and
// the in-memory result is still returned so the session keeps working).
type Service struct {
	store   Store
	tracker EventTracker
	log     *slog.Logger
	now     func() time.Time
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger sets the logger used to report swallowed persistence failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source. Tests use this to pin trial and
// grace arithmetic to fixed instants.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service backed by the given store. Panics on a nil
// store to fail fast during initialization; tracker may be nil to disable
// analytics.
func NewService(store Store, tracker EventTracker, opts ...Option) *Service {
	if store == nil {
		panic("entitlement: store is required")
	}
	s := &Service{
		store:   store,
		tracker: tracker,
		log:     slog.Default(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSubscription returns the current record. Never fails: a missing,
// corrupted, or unreachable backend yields the default record.
func (s *Service) GetSubscription(ctx context.Context) *Subscription {
	sub, err := s.store.Load(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "entitlement load degraded to defaults", "error", err)
	}
	if sub == nil {
		sub = DefaultSubscription()
	}
	return sub
}

// SaveSubscription overwrites the full record. This is the one entry point
// that surfaces persistence errors, for callers that opt into observing
// them; the lifecycle operations below swallow the same errors after
// logging.
func (s *Service) SaveSubscription(ctx context.Context, sub *Subscription) error {
	return s.store.Save(ctx, sub)
}

// save persists best-effort. The in-memory record remains the source of
// truth for the rest of the session even when the write is lost.
func (s *Service) save(ctx context.Context, sub *Subscription) {
	if err := s.store.Save(ctx, sub); err != nil {
		s.log.WarnContext(ctx, "entitlement save failed, continuing with in-memory record", "error", err)
	}
}

func (s *Service) track(ctx context.Context, name string, metadata map[string]any) {
	if s.tracker == nil {
		return
	}
	s.tracker.Track(ctx, name, metadata)
}

// StartTrial opens the 7-day trial: plan becomes pro, the trial window is
// pinned to now..now+7d, and any cross-session upgrade intent is cleared.
// Valid only from the inactive state; anywhere else the record is left
// untouched and ErrInvalidTransition is returned.
func (s *Service) StartTrial(ctx context.Context) (*Subscription, error) {
	sub := s.GetSubscription(ctx)

	next, err := NextStatus(sub.Status, ActionStartTrial)
	if err != nil {
		return sub, err
	}

	now := s.now()
	end := now.Add(TrialDuration)
	sub.Status = next
	sub.PlanType = PlanPro
	sub.TrialStartDate = &now
	sub.TrialEndDate = &end
	sub.IntentUpgradeFlag = false

	s.save(ctx, sub)
	s.track(ctx, EventStartedTrial, nil)
	return sub, nil
}

// IsTrialExpired reports whether the record is in trial with its window
// elapsed. Pure read: expiry never mutates status, the collaborator that
// observes the predicate owns the transition out of trial.
func (s *Service) IsTrialExpired(ctx context.Context) bool {
	return s.GetSubscription(ctx).IsTrialExpiredAt(s.now())
}

// GetTrialDaysRemaining returns the days left in the trial window, rounded
// up and floored at zero.
func (s *Service) GetTrialDaysRemaining(ctx context.Context) int {
	return s.GetSubscription(ctx).TrialDaysRemainingAt(s.now())
}

// UpdateLastActive stamps activity for today. DaysUsed grows by one only
// when the UTC calendar date changed since the last stamp, so calling this
// on every app start is idempotent within a day. FirstUseDate is set once
// and never moves.
func (s *Service) UpdateLastActive(ctx context.Context) *Subscription {
	sub := s.GetSubscription(ctx)
	now := s.now()

	if sub.LastActiveDate == nil || !sameUTCDate(*sub.LastActiveDate, now) {
		sub.DaysUsed++
	}
	sub.LastActiveDate = &now
	if sub.FirstUseDate == nil {
		sub.FirstUseDate = &now
	}

	s.save(ctx, sub)
	return sub
}

// IncrementQuotesCreated bumps the monotonic quote counter and persists
// immediately. Racing increments from concurrent contexts can be lost at
// the blob level; see the package documentation.
func (s *Service) IncrementQuotesCreated(ctx context.Context) *Subscription {
	sub := s.GetSubscription(ctx)
	sub.QuotesCreated++
	s.save(ctx, sub)
	return sub
}

// Activate is the payment collaborator's entry point: a confirmed payment
// moves a trialing or grace record to active and opens the paid window.
func (s *Service) Activate(ctx context.Context) (*Subscription, error) {
	sub := s.GetSubscription(ctx)

	next, err := NextStatus(sub.Status, ActionActivate)
	if err != nil {
		return sub, err
	}

	now := s.now()
	sub.Status = next
	sub.SubscriptionStart = &now
	sub.SubscriptionEnd = nil
	sub.ChurnReason = nil

	s.save(ctx, sub)
	return sub, nil
}

// Cancel is the payment collaborator's entry point for finalizing a
// cancellation into the canceled state once the grace window has been
// reconciled upstream.
func (s *Service) Cancel(ctx context.Context) (*Subscription, error) {
	sub := s.GetSubscription(ctx)

	next, err := NextStatus(sub.Status, ActionCancel)
	if err != nil {
		return sub, err
	}

	sub.Status = next
	s.save(ctx, sub)
	return sub, nil
}

// TrackEvent forwards to the configured tracker. Fire-and-forget: a nil
// tracker makes this a no-op.
func (s *Service) TrackEvent(ctx context.Context, name string, metadata map[string]any) {
	s.track(ctx, name, metadata)
}

// Now exposes the service clock so collaborating packages (churn flow,
// onboarding nudges) share the same time source in tests.
func (s *Service) Now() time.Time {
	return s.now()
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
