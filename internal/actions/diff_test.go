package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/actions"
	"gg.dev/gg/testhelpers"
)

func TestDiffAndFixupAction(t *testing.T) {
	m := testhelpers.NewMemoryContext(t)
	m.Segment(t, "feat", 100, "a")

	require.NoError(t, actions.DiffAction(m.Ctx))
	require.NoError(t, actions.FixupAction(m.Ctx))

	require.Equal(t, 1, m.Memory.CountCalls("diff me/starts/feat/part-1.0"))
	require.Equal(t, 1, m.Memory.CountCalls("rebase -i me/starts/feat/part-1.0"))
}

func TestFetchAction(t *testing.T) {
	m := testhelpers.NewMemoryContext(t)

	// Nothing on the remote yet
	require.Error(t, actions.FetchAction(m.Ctx))

	m.Memory.SetRemoteBranch("origin", "main", "main")
	require.NoError(t, actions.FetchAction(m.Ctx))
	require.Equal(t, 2, m.Memory.CountCalls("fetch -p origin main"))
}
