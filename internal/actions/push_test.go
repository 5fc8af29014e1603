package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/testhelpers"
)

func TestPushAction(t *testing.T) {
	t.Run("pushes only the full branch at the bottom of a stack", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "feat", 100, "a")

		require.NoError(t, actions.PushAction(m.Ctx, actions.PushOptions{}))
		require.Equal(t, []string{"push origin me/feat/part-1.0"}, m.Memory.Calls[len(m.Memory.Calls)-1:])
	})

	t.Run("does not push the start branch unasked", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "feat", 100, "a")
		m.Segment(t, "feat", 200, "b")

		require.NoError(t, actions.PushAction(m.Ctx, actions.PushOptions{}))
		require.Equal(t, 1, m.Memory.CountCalls("push origin me/feat/part-2.0"))
		require.Empty(t, m.Memory.RemoteBranch("origin", "me/starts/feat/part-2.0"))
		require.Contains(t, m.Output.String(), "--start")
	})

	t.Run("pushes the start branch with force", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "feat", 100, "a")
		m.Segment(t, "feat", 200, "b")

		require.NoError(t, actions.PushAction(m.Ctx, actions.PushOptions{Start: true, Force: true}))
		require.Equal(t, 1, m.Memory.CountCalls("push --force origin me/feat/part-2.0 me/starts/feat/part-2.0"))
		require.Equal(t, m.Memory.Branch("me/starts/feat/part-2.0"), m.Memory.RemoteBranch("origin", "me/starts/feat/part-2.0"))
	})
}
