// Package tiergate decides whether a feature is available at the
// installation's effective plan tier.
//
// Tier ordering is total over the numeric levels: free(0) < pro(1) <
// premium(2). The "start" plan is a label only; it participates in gating
// at level 0, the same as free. During an active trial the effective tier
// is elevated to pro regardless of the nominal plan.
//
// Gate checks are side-effect-free on the allow path. A deny records the
// blocked feature as UI state, emits a feature_locked_attempt event, and
// optionally signals an upgrade-prompt callback. Unknown minimum tiers deny
// conservatively: only known labels carry a level.
package tiergate
