package nudge

import (
	"context"
	"fmt"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

// Engine is the read-only slice of the entitlement service a nudge needs.
// *entitlement.Service satisfies it.
type Engine interface {
	GetSubscription(ctx context.Context) *entitlement.Subscription
	GetTrialDaysRemaining(ctx context.Context) int
}

// ForEngine evaluates Message against the engine's live record. This is
// the getOnboardingMessage entry point UI collaborators call per render.
func ForEngine(ctx context.Context, e Engine) (string, bool) {
	return Message(FromSubscription(e.GetSubscription(ctx), e.GetTrialDaysRemaining(ctx)))
}

// Input is the state snapshot a nudge decision is made from.
type Input struct {
	Status             entitlement.Status
	PlanType           entitlement.PlanType
	DaysUsed           int
	QuotesCreated      int
	TrialDaysRemaining int
}

// FromSubscription builds an Input from the record plus the precomputed
// trial countdown.
func FromSubscription(sub *entitlement.Subscription, trialDaysRemaining int) Input {
	if sub == nil {
		sub = entitlement.DefaultSubscription()
	}
	return Input{
		Status:             sub.Status,
		PlanType:           sub.PlanType,
		DaysUsed:           sub.DaysUsed,
		QuotesCreated:      sub.QuotesCreated,
		TrialDaysRemaining: trialDaysRemaining,
	}
}

// Message returns the advisory message for the given state, or false when
// nothing should be shown. Rules are evaluated top to bottom, first match
// wins:
//
//  1. active subscribers see nothing
//  2. a trial ending within 3 days warns with the exact day count
//  3. free plan with 5+ days of use gets the generic upsell
//  4. free plan with 3+ quotes gets the stock-control upsell
//  5. free plan with 1+ quotes gets the branding upsell
func Message(in Input) (string, bool) {
	switch {
	case in.Status == entitlement.StatusActive:
		return "", false

	case in.Status == entitlement.StatusTrial && in.TrialDaysRemaining > 0 && in.TrialDaysRemaining <= 3:
		return fmt.Sprintf("Your Pro trial ends in %s. Upgrade now to keep your premium features.",
			dayCount(in.TrialDaysRemaining)), true

	case in.PlanType == entitlement.PlanFree && in.DaysUsed >= 5:
		return "You've been using the app for a while. Upgrade to Pro to unlock everything.", true

	case in.PlanType == entitlement.PlanFree && in.QuotesCreated >= 3:
		return "Keep your inventory in sync: stock control is included with Pro.", true

	case in.PlanType == entitlement.PlanFree && in.QuotesCreated >= 1:
		return "Make your quotes yours: add your own branding with Pro.", true
	}
	return "", false
}

func dayCount(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
