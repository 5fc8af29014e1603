// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch management (create, delete, checkout, rename, force moves)
//   - Cherry-picking commit ranges and resolving paused cherry-picks
//   - Repo state queries (current branch, branch listing, commit hash and author time)
//   - Remote operations (fetch, push, remote deletion)
//   - Repository-local config values
//
// Reads go through go-git; anything that mutates the repository runs the git
// binary. This package should be the only place where git commands are executed.
package git
