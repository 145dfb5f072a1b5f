package entitlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

// fullRecord exercises every persisted field, including the
// collaborator-owned ones this engine never writes.
func fullRecord() *entitlement.Subscription {
	trialStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := trialStart.Add(entitlement.TrialDuration)
	subStart := time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)
	subEnd := subStart.Add(entitlement.GraceDuration)
	lastActive := time.Date(2025, 2, 9, 14, 5, 0, 0, time.UTC)
	firstUse := trialStart
	reason := "not_using"

	return &entitlement.Subscription{
		PlanType:           entitlement.PlanPremium,
		Status:             entitlement.StatusCanceled,
		TrialStartDate:     &trialStart,
		TrialEndDate:       &trialEnd,
		SubscriptionStart:  &subStart,
		SubscriptionEnd:    &subEnd,
		LastActiveDate:     &lastActive,
		FirstUseDate:       &firstUse,
		IntentUpgradeFlag:  true,
		ChurnReason:        &reason,
		OnboardingComplete: true,
		OnboardingStep:     4,
		QuotesCreated:      17,
		DaysUsed:           9,
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := entitlement.NewMemoryStore()

	t.Run("empty load yields defaults", func(t *testing.T) {
		sub, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entitlement.DefaultSubscription(), sub)
	})

	t.Run("round-trips every field", func(t *testing.T) {
		orig := fullRecord()
		require.NoError(t, store.Save(ctx, orig))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, orig, loaded)
	})

	t.Run("load returns an isolated copy", func(t *testing.T) {
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		loaded.QuotesCreated = 9999

		again, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 17, again.QuotesCreated)
	})

	t.Run("nil save rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, nil), entitlement.ErrInvalidConfig)
	})
}
