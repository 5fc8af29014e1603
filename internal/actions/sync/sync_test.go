package sync_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/actions/sync"
	"gg.dev/gg/testhelpers"
)

func TestSyncMemory(t *testing.T) {
	setup := func(t *testing.T) (*testhelpers.MemoryContext, string, string) {
		m := testhelpers.NewMemoryContext(t)
		id := m.Segment(t, "feat", 100, "a")
		full := m.Codec().Encode(id)
		start := m.Codec().EncodeStart(id)
		m.Memory.SetRemoteBranch("origin", full, full)
		m.Memory.SetRemoteBranch("origin", start, start)
		return m, full, start
	}

	t.Run("skips when local is at least as recent", func(t *testing.T) {
		m, full, _ := setup(t)
		before := m.Memory.Branch(full)

		outcome, err := sync.Action(m.Ctx, sync.Options{})
		require.NoError(t, err)
		require.Equal(t, sync.Skipped, outcome)
		require.Equal(t, before, m.Memory.Branch(full))
		require.Contains(t, m.Output.String(), "is newer than origin/"+full)
		require.Equal(t, 0, m.Memory.CountCalls("reset --hard"))
	})

	t.Run("moves both branches when remote is newer", func(t *testing.T) {
		m, full, start := setup(t)

		// Someone else amended the segment on top of a newer start
		require.NoError(t, m.Ctx.Runner.Checkout(m.Ctx.Context, "main"))
		newStart := m.Memory.Commit("main moved")
		newFull := m.Memory.CommitAt("a amended", testhelpers.DefaultCommitTime.Add(time.Hour))
		m.Memory.SetRemoteBranch("origin", start, newStart)
		m.Memory.SetRemoteBranch("origin", full, newFull)
		require.NoError(t, m.Ctx.Runner.Checkout(m.Ctx.Context, full))

		outcome, err := sync.Action(m.Ctx, sync.Options{})
		require.NoError(t, err)
		require.Equal(t, sync.Synced, outcome)
		require.Equal(t, newFull, m.Memory.Branch(full))
		require.Equal(t, newStart, m.Memory.Branch(start))
	})

	t.Run("force overwrites a newer local branch", func(t *testing.T) {
		m, full, _ := setup(t)
		remote := m.Memory.RemoteBranch("origin", full)
		m.Memory.Commit("local only")

		outcome, err := sync.Action(m.Ctx, sync.Options{Force: true})
		require.NoError(t, err)
		require.Equal(t, sync.Synced, outcome)
		require.Equal(t, remote, m.Memory.Branch(full))
	})

	t.Run("fails when the branch was never pushed", func(t *testing.T) {
		m := testhelpers.NewMemoryContext(t)
		m.Segment(t, "feat", 100, "a")

		_, err := sync.Action(m.Ctx, sync.Options{})
		require.Error(t, err)
	})
}

func TestSyncWithRemote(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))

	require.NoError(t, scene.CreateSegment("feat", 100, "a"))
	full := scene.Name("feat", 100)
	start := scene.StartName("feat", 100)
	require.NoError(t, scene.Repo.PushBranch("origin", full))
	require.NoError(t, scene.Repo.PushBranch("origin", start))

	// A second clone pushes a later commit to the segment
	other, err := testhelpers.CloneGitRepo(scene.Dir+"-origin.git", filepath.Join(t.TempDir(), "other"))
	require.NoError(t, err)
	require.NoError(t, other.CheckoutBranch(full))
	require.NoError(t, other.CommitAt("b", "b", testhelpers.DefaultCommitTime.Add(24*time.Hour)))
	require.NoError(t, other.PushBranch("origin", full))
	remoteTip, err := other.GetRevision(full)
	require.NoError(t, err)

	outcome, err := sync.Action(scene.Context(), sync.Options{})
	require.NoError(t, err)
	require.Equal(t, sync.Synced, outcome)
	testhelpers.ExpectCurrentBranch(t, scene.Repo, full)
	require.Equal(t, remoteTip, testhelpers.Must(scene.Repo.GetRevision(full)))

	// Nothing newer the second time around
	outcome, err = sync.Action(scene.Context(), sync.Options{})
	require.NoError(t, err)
	require.Equal(t, sync.Skipped, outcome)
}
