// Package eventlog provides the bounded, write-only analytics trail of the
// entitlement engine. Lifecycle operations append events through a Tracker;
// nothing in the application ever reads the log back to make a decision, it
// exists purely as an audit/telemetry record.
//
// The log holds at most a fixed number of events (500 by default). When the
// capacity is exceeded the oldest entries are evicted first.
//
// Tracking is fire-and-forget by contract: a failed append is logged and
// swallowed, never surfaced to the business logic that emitted the event.
// An entitlement decision must not block or break because telemetry is
// down.
//
// # Usage
//
//	tracker := eventlog.NewTracker(eventlog.NewMemoryStorage(0))
//	tracker.Track(ctx, "started_trial", nil)
//	tracker.Track(ctx, "feature_locked_attempt", map[string]any{
//		"feature":  "reports",
//		"required": "premium",
//	})
package eventlog
