package tiergate

import (
	"time"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

// Level maps a plan label to its gating level. Only pro and premium are
// elevated; free, start, and anything unrecognized sit at zero. Keeping
// start at zero is deliberate: it is a plan label, not a tier rung.
func Level(plan entitlement.PlanType) int {
	switch plan {
	case entitlement.PlanPro:
		return 1
	case entitlement.PlanPremium:
		return 2
	}
	return 0
}

// RequiredLevel resolves the level a gate check demands. Unknown labels
// report ok=false so callers deny conservatively instead of treating a
// typo as level zero.
func RequiredLevel(minTier entitlement.PlanType) (int, bool) {
	if !minTier.Valid() {
		return 0, false
	}
	return Level(minTier), true
}

// EffectiveTier is the tier a gating decision actually uses at the given
// time: a trial still inside its window elevates any plan below pro to pro,
// otherwise the nominal plan is used verbatim. A record whose status is
// still trial past trialEndDate gets no elevation; the lazy status
// transition belongs to the payment collaborator, losing access does not
// wait for it.
func EffectiveTier(sub *entitlement.Subscription, now time.Time) entitlement.PlanType {
	if sub == nil {
		return entitlement.PlanFree
	}
	if sub.Status == entitlement.StatusTrial && !sub.IsTrialExpiredAt(now) &&
		Level(sub.PlanType) < Level(entitlement.PlanPro) {
		return entitlement.PlanPro
	}
	return sub.PlanType
}
