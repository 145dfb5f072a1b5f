// Package churn implements the two-step cancellation/retention protocol:
// reason capture followed by a fixed retention offer.
//
// A Flow is created per cancellation attempt and is terminal either way.
// Selecting a reason logs the cancellation *intent* immediately (before the
// outcome is known) and moves the flow to the offer step; the persisted
// record is untouched until one of the two exits:
//
//   - AcceptOffer reactivates the record in place. It never passes through
//     the grace state, and it only records intent-to-retain: applying the
//     actual discount to billing belongs to the payment collaborator.
//   - ConfirmCancel commits the record into a 3-day grace window and drops
//     the owning entity's paid access immediately through the injected
//     downgrade hook. Grace is a data retention/reactivation courtesy, not
//     a continued-access courtesy.
//
// After either exit the flow is closed; there is no automatic re-offer.
package churn
