package entitlement

import "time"

// Subscription is the singleton entitlement record of an installation. The
// JSON tags are the persisted wire format shared with collaborators; every
// field must round-trip through every Store even when this engine never
// writes it (e.g. the canceled status, intentUpgradeFlag).
type Subscription struct {
	PlanType           PlanType   `json:"planType"`
	Status             Status     `json:"subscriptionStatus"`
	TrialStartDate     *time.Time `json:"trialStartDate"`
	TrialEndDate       *time.Time `json:"trialEndDate"`
	SubscriptionStart  *time.Time `json:"subscriptionStart"`
	SubscriptionEnd    *time.Time `json:"subscriptionEnd"`
	LastActiveDate     *time.Time `json:"lastActiveDate"`
	FirstUseDate       *time.Time `json:"firstUseDate"`
	IntentUpgradeFlag  bool       `json:"intentUpgradeFlag"`
	ChurnReason        *string    `json:"churnReason"`
	OnboardingComplete bool       `json:"onboardingCompleted"`
	OnboardingStep     int        `json:"onboardingStep"`
	QuotesCreated      int        `json:"quotesCreated"`
	DaysUsed           int        `json:"daysUsed"`
}

// DefaultSubscription returns the record a fresh installation starts with.
// Loading missing or corrupted data always degrades to exactly this value.
func DefaultSubscription() *Subscription {
	return &Subscription{
		PlanType: PlanFree,
		Status:   StatusInactive,
	}
}

// Clone returns a deep copy so stores can hand out records without sharing
// pointers with their internal state.
func (s *Subscription) Clone() *Subscription {
	if s == nil {
		return nil
	}
	c := *s
	c.TrialStartDate = cloneTime(s.TrialStartDate)
	c.TrialEndDate = cloneTime(s.TrialEndDate)
	c.SubscriptionStart = cloneTime(s.SubscriptionStart)
	c.SubscriptionEnd = cloneTime(s.SubscriptionEnd)
	c.LastActiveDate = cloneTime(s.LastActiveDate)
	c.FirstUseDate = cloneTime(s.FirstUseDate)
	if s.ChurnReason != nil {
		r := *s.ChurnReason
		c.ChurnReason = &r
	}
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// IsTrialing returns true if the subscription is in trial status.
func (s *Subscription) IsTrialing() bool {
	return s.Status == StatusTrial
}

// IsActive returns true if the subscription is active (paid).
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

// IsInGrace returns true if a cancellation has been confirmed and the record
// is inside its retention window.
func (s *Subscription) IsInGrace() bool {
	return s.Status == StatusGrace
}

// IsTrialExpiredAt reports whether the trial window has elapsed at the given
// time. Evaluating this never mutates status: transitioning an expired trial
// out of the trial state is the payment collaborator's responsibility, the
// engine only observes the predicate lazily.
func (s *Subscription) IsTrialExpiredAt(now time.Time) bool {
	if s.Status != StatusTrial || s.TrialEndDate == nil {
		return false
	}
	return now.After(*s.TrialEndDate)
}

// TrialDaysRemainingAt returns the number of whole or partial days left in
// the trial window at the given time, floored at zero. Partial days round
// up so "ends tomorrow morning" reads as 1 day, not 0. Returns 0 when no
// trial end is set.
func (s *Subscription) TrialDaysRemainingAt(now time.Time) int {
	if s.TrialEndDate == nil {
		return 0
	}
	remaining := s.TrialEndDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return days
}
