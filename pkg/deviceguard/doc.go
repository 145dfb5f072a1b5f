// Package deviceguard carries the device-limit contract between the
// entitlement engine and the external collaborator that actually counts
// active devices per class (desktop/mobile).
//
// The engine never owns device records: it consumes an opaque Decision and
// enforces it at the route boundary. Device-limit denial is orthogonal to
// tier gating and is checked independently of it — a premium subscriber
// over their device limit is still blocked. The denial is a first-class
// UI-visible state with remediation text, not an error.
//
// Plan-derived limits ship with built-in defaults and can be overridden by
// a YAML catalog.
package deviceguard
