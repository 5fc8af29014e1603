package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/testhelpers"
)

func TestRenameAction(t *testing.T) {
	t.Run("renames full and start", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "feat", 200, "a")
		tip := m.Memory.Branch("me/feat/part-2.0")

		require.NoError(t, actions.RenameAction(m.Ctx, actions.RenameOptions{NewName: "better name"}))

		current, _ := m.Memory.CurrentBranch(m.Ctx.Context)
		require.Equal(t, "me/better-name/part-2.0", current)
		require.Equal(t, tip, m.Memory.Branch(current))
		require.Equal(t, "c001", m.Memory.Branch("me/starts/better-name/part-2.0"))
		require.Empty(t, m.Memory.Branch("me/feat/part-2.0"))
		require.Empty(t, m.Memory.Branch("me/starts/feat/part-2.0"))
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "feat", 100, "a")

		require.NoError(t, actions.RenameAction(m.Ctx, actions.RenameOptions{NewName: "feat"}))
		require.Equal(t, 0, m.Memory.CountCalls("branch -m"))
	})

	t.Run("refuses an existing target", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "other", 100, "x")
		require.NoError(t, m.Ctx.Runner.Checkout(m.Ctx.Context, "main"))
		m.Segment(t, "feat", 100, "a")

		err := actions.RenameAction(m.Ctx, actions.RenameOptions{NewName: "other"})
		require.ErrorContains(t, err, "already exists")
	})

	t.Run("requires a name when not interactive", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "feat", 100, "a")

		require.Error(t, actions.RenameAction(m.Ctx, actions.RenameOptions{}))
	})
}
