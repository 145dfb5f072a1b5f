// Package nudge derives the single advisory message shown during
// onboarding from the subscription state and usage counters.
//
// Message is a pure function evaluated in fixed priority order with first
// match winning; it never mutates state and is safe to call on every
// render.
package nudge
