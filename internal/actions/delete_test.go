package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/testhelpers"
)

func TestDeleteAction(t *testing.T) {
	t.Run("deletes the current branch and moves to the previous one", func(t *testing.T) {
		m := threeParts(t)

		require.NoError(t, actions.DeleteAction(m.Ctx, actions.DeleteOptions{}))

		current, _ := m.Memory.CurrentBranch(m.Ctx.Context)
		require.Equal(t, "me/feat/part-1.0", current)
		require.Empty(t, m.Memory.Branch("me/feat/part-2.0"))
		require.Empty(t, m.Memory.Branch("me/starts/feat/part-2.0"))
		// Remote deletion is attempted even though it fails
		require.Equal(t, 1, m.Memory.CountCalls("push origin --delete me/feat/part-2.0"))
	})

	t.Run("deletes remote copies", func(t *testing.T) {
		m := threeParts(t)
		require.NoError(t, actions.PushAction(m.Ctx, actions.PushOptions{Start: true}))

		require.NoError(t, actions.DeleteAction(m.Ctx, actions.DeleteOptions{}))
		require.Empty(t, m.Memory.RemoteBranch("origin", "me/feat/part-2.0"))
		require.Empty(t, m.Memory.RemoteBranch("origin", "me/starts/feat/part-2.0"))
	})

	t.Run("falls back to the remote main", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Memory.SetRemoteBranch("origin", "main", "main")
		m.Segment(t, "feat", 100, "a")

		require.NoError(t, actions.DeleteAction(m.Ctx, actions.DeleteOptions{}))
		require.Equal(t, 1, m.Memory.CountCalls("checkout origin/main"))
		require.Empty(t, m.Memory.Branch("me/feat/part-1.0"))
	})

	t.Run("checks out the given destination", func(t *testing.T) {
		m := threeParts(t)

		require.NoError(t, actions.DeleteAction(m.Ctx, actions.DeleteOptions{Dest: "main"}))
		current, _ := m.Memory.CurrentBranch(m.Ctx.Context)
		require.Equal(t, "main", current)
	})

	t.Run("deletes another branch without moving", func(t *testing.T) {
		m := threeParts(t)

		require.NoError(t, actions.DeleteAction(m.Ctx, actions.DeleteOptions{Branch: "me/starts/feat/part-3.0"}))
		current, _ := m.Memory.CurrentBranch(m.Ctx.Context)
		require.Equal(t, "me/feat/part-2.0", current)
		require.Empty(t, m.Memory.Branch("me/feat/part-3.0"))
		require.Empty(t, m.Memory.Branch("me/starts/feat/part-3.0"))
	})
}
