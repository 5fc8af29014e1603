package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/actions"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/testhelpers"
)

// threeParts creates me/feat/part-1.0, 2.0 and 3.0 and checks out part 2.0.
func threeParts(t *testing.T) *testhelpers.MemoryContext {
	t.Helper()
	m := testhelpers.NewMemoryContext(t)
	m.Segment(t, "feat", 100, "a")
	m.Segment(t, "feat", 200, "b")
	m.Segment(t, "feat", 300, "c")
	require.NoError(t, m.Ctx.Runner.Checkout(m.Ctx.Context, "me/feat/part-2.0"))
	return m
}

func TestCheckoutAction(t *testing.T) {
	tests := []struct {
		name     string
		opts     actions.CheckoutOptions
		expected string
	}{
		{"next", actions.CheckoutOptions{Next: true}, "me/feat/part-3.0"},
		{"prev", actions.CheckoutOptions{Prev: true}, "me/feat/part-1.0"},
		{"start", actions.CheckoutOptions{Start: true}, "me/feat/part-1.0"},
		{"part", actions.CheckoutOptions{Part: "3"}, "me/feat/part-3.0"},
		{"part wins over next", actions.CheckoutOptions{Part: "1.0", Next: true}, "me/feat/part-1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := threeParts(t)
			require.NoError(t, actions.CheckoutAction(m.Ctx, tt.opts))
			current, _ := m.Memory.CurrentBranch(m.Ctx.Context)
			require.Equal(t, tt.expected, current)
		})
	}

	t.Run("reports a missing sibling", func(t *testing.T) {
		m := threeParts(t)
		require.NoError(t, m.Ctx.Runner.Checkout(m.Ctx.Context, "me/feat/part-3.0"))

		err := actions.CheckoutAction(m.Ctx, actions.CheckoutOptions{Next: true})
		require.ErrorIs(t, err, ggerrors.ErrNoPreviousBranch)
	})

	t.Run("already on the target", func(t *testing.T) {
		m := threeParts(t)
		require.NoError(t, actions.CheckoutAction(m.Ctx, actions.CheckoutOptions{Part: "2"}))
		require.Contains(t, m.Output.String(), "Already on")
	})

	t.Run("rejects an invalid part", func(t *testing.T) {
		m := threeParts(t)
		err := actions.CheckoutAction(m.Ctx, actions.CheckoutOptions{Part: "two"})
		require.ErrorContains(t, err, "invalid part")

		err = actions.CheckoutAction(m.Ctx, actions.CheckoutOptions{Part: "2.05"})
		require.ErrorContains(t, err, "one decimal digit")
	})

	t.Run("needs a flag when not interactive", func(t *testing.T) {
		m := threeParts(t)
		err := actions.CheckoutAction(m.Ctx, actions.CheckoutOptions{})
		require.Error(t, err)
	})
}
