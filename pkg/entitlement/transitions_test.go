package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekit/quotekit/pkg/entitlement"
)

func TestNextStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from   entitlement.Status
		action entitlement.Action
		want   entitlement.Status
		ok     bool
	}{
		{entitlement.StatusInactive, entitlement.ActionStartTrial, entitlement.StatusTrial, true},
		{entitlement.StatusTrial, entitlement.ActionActivate, entitlement.StatusActive, true},
		{entitlement.StatusTrial, entitlement.ActionConfirmCancel, entitlement.StatusGrace, true},
		{entitlement.StatusTrial, entitlement.ActionAcceptOffer, entitlement.StatusTrial, true},
		{entitlement.StatusActive, entitlement.ActionAcceptOffer, entitlement.StatusActive, true},
		{entitlement.StatusActive, entitlement.ActionConfirmCancel, entitlement.StatusGrace, true},
		{entitlement.StatusActive, entitlement.ActionCancel, entitlement.StatusCanceled, true},
		{entitlement.StatusGrace, entitlement.ActionAcceptOffer, entitlement.StatusActive, true},
		{entitlement.StatusGrace, entitlement.ActionCancel, entitlement.StatusCanceled, true},

		// Illegal edges stay illegal.
		{entitlement.StatusInactive, entitlement.ActionConfirmCancel, entitlement.StatusInactive, false},
		{entitlement.StatusTrial, entitlement.ActionStartTrial, entitlement.StatusTrial, false},
		{entitlement.StatusActive, entitlement.ActionStartTrial, entitlement.StatusActive, false},
		{entitlement.StatusCanceled, entitlement.ActionStartTrial, entitlement.StatusCanceled, false},
		{entitlement.StatusCanceled, entitlement.ActionAcceptOffer, entitlement.StatusCanceled, false},
		{entitlement.StatusGrace, entitlement.ActionConfirmCancel, entitlement.StatusGrace, false},
	}

	for _, tt := range tests {
		got, err := entitlement.NextStatus(tt.from, tt.action)
		if tt.ok {
			require.NoError(t, err, "%s on %s", tt.action, tt.from)
			assert.Equal(t, tt.want, got)
			assert.True(t, entitlement.CanTransition(tt.from, tt.action))
		} else {
			require.ErrorIs(t, err, entitlement.ErrInvalidTransition, "%s on %s", tt.action, tt.from)
			assert.Equal(t, tt.from, got, "illegal transition must not move the status")
			assert.False(t, entitlement.CanTransition(tt.from, tt.action))
		}
	}
}

func TestCanceledIsCollaboratorOwned(t *testing.T) {
	t.Parallel()

	// No in-scope action reaches canceled: only the reserved ActionCancel
	// rows do, and the engine never fires them on its own.
	inScope := []entitlement.Action{
		entitlement.ActionStartTrial,
		entitlement.ActionAcceptOffer,
		entitlement.ActionConfirmCancel,
	}
	for _, from := range []entitlement.Status{
		entitlement.StatusInactive,
		entitlement.StatusTrial,
		entitlement.StatusActive,
		entitlement.StatusGrace,
	} {
		for _, action := range inScope {
			next, err := entitlement.NextStatus(from, action)
			if err != nil {
				continue
			}
			assert.NotEqual(t, entitlement.StatusCanceled, next,
				"%s on %s must not reach canceled", action, from)
		}
	}
}
