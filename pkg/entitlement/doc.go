// Package entitlement implements the client-resident subscription and
// entitlement engine: a single persisted Subscription record, an explicit
// lifecycle transition table over its status, and the trial/usage operations
// the rest of the application builds feature gating on.
//
// The package is deliberately forgiving at its edges. Loading the record
// never fails: missing or corrupted data degrades to a fully populated
// default record (plan "free", status "inactive"). Persisting the record is
// best effort: write failures are logged and swallowed so that entitlement
// decisions keep working against the in-memory copy for the rest of the
// session.
//
// # Architecture
//
//   - Subscription – the persisted record and its derived predicates
//   - Store – pluggable persistence for the record (memory, file, Redis,
//     SQLite, Postgres)
//   - Service – lifecycle operations (trial start, activity counters,
//     collaborator-owned activation/cancellation)
//   - transition table – the single validated choke point for status changes
//
// # Concurrency
//
// The record is a single read-modify-write blob with no optimistic
// concurrency token. Stores are safe for concurrent use, but two execution
// contexts mutating the record concurrently race at the blob level: the
// later Save wins and increments from the earlier context can be lost. This
// is a documented property of the storage model, not a bug in the stores;
// moving authoritative counters behind atomic server-side increments is the
// upgrade path if multi-client writes ever become the norm.
//
// # Usage
//
//	store, err := entitlement.NewFileStore("entitlement.json")
//	if err != nil {
//		// handle error
//	}
//
//	svc := entitlement.NewService(store, tracker)
//
//	sub, err := svc.StartTrial(ctx)
//	if err != nil {
//		// already trialing, active, etc.
//	}
//	_ = sub.TrialDaysRemainingAt(time.Now().UTC()) // 7
package entitlement
