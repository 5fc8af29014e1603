// Package testhelpers provides testing utilities for gg, including a scene
// system, Git repository helpers, an in-memory Runner and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	expected = append([]string(nil), expected...)
	sort.Strings(expected)

	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectSameCommit asserts that two refs point at the same commit.
func ExpectSameCommit(t *testing.T, repo *GitRepo, a, b string) {
	t.Helper()
	require.Equal(t, Must(repo.GetRevision(a)), Must(repo.GetRevision(b)), "%s and %s differ", a, b)
}

// ExpectCurrentBranch asserts the checked-out branch.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()
	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, expected, current)
}
