package cli_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"gg.dev/gg/internal/cli"
	"gg.dev/gg/internal/config"
	"gg.dev/gg/testhelpers"
)

// runGG runs the gg command line in the scene directory.
func runGG(t *testing.T, args ...string) error {
	t.Helper()
	cmd := cli.NewRootCmd("test", "none", "unknown")
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestInitCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	require.NoError(t, runGG(t, "init", "--prefix", "wh", "--separator", "_"))

	cfg, err := config.GetRepoConfig(scene.GitDir())
	require.NoError(t, err)
	require.Equal(t, "wh", cfg.Prefix)
	require.Equal(t, "_", cfg.Separator)
	require.Equal(t, "main", cfg.MainBranch)
}

func TestStackWorkflow(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	require.NoError(t, runGG(t, "new", "--feature", "feat"))
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "me/feat/part-1.0")
	require.NoError(t, scene.Repo.CreateChangeAndCommit("a", "a"))

	require.NoError(t, runGG(t, "new"))
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "me/feat/part-2.0")
	require.NoError(t, scene.Repo.CreateChangeAndCommit("b", "b"))

	require.NoError(t, runGG(t, "co", "--prev"))
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "me/feat/part-1.0")
	require.NoError(t, scene.Repo.CreateChangeAndCommit("a2", "a2"))

	require.NoError(t, runGG(t, "co", "-n"))
	require.NoError(t, runGG(t, "rs"))
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "me/feat/part-2.0")
	testhelpers.ExpectSameCommit(t, scene.Repo, "me/feat/part-1.0", "me/starts/feat/part-2.0")
	require.Equal(t, []string{"b"}, testhelpers.Must(scene.Repo.CommitMessages("me/starts/feat/part-2.0", "me/feat/part-2.0")))

	require.NoError(t, runGG(t, "rename", "better"))
	testhelpers.ExpectBranches(t, scene.Repo, []string{
		"main",
		"me/feat/part-1.0", "me/starts/feat/part-1.0",
		"me/better/part-2.0", "me/starts/better/part-2.0",
	})

	require.NoError(t, runGG(t, "del", "--dest", "main"))
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "main")
	testhelpers.ExpectBranches(t, scene.Repo, []string{"main", "me/feat/part-1.0", "me/starts/feat/part-1.0"})
}

func TestCommandsRequireInit(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, os.Remove(config.Path(scene.GitDir())))

	require.ErrorContains(t, runGG(t, "new", "--feature", "feat"), "gg init")
}
