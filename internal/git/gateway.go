package git

import (
	"context"
	"log/slog"
	"time"
)

// CherryPickResult represents the result of a cherry-pick operation
type CherryPickResult int

const (
	// CherryPickDone indicates every commit of the range was applied
	CherryPickDone CherryPickResult = iota
	// CherryPickConflict indicates the cherry-pick stopped and waits for the user
	CherryPickConflict
)

// Runner defines the git operations the stack commands are built on.
// This allows the rebase and sync logic to be used with both real git and
// in-memory implementations.
type Runner interface {
	// Repository state
	CurrentBranch(ctx context.Context) (string, error)
	ListBranches(ctx context.Context) ([]string, error)
	RefExists(ctx context.Context, ref string) bool
	CommitHash(ctx context.Context, ref string) (string, error)
	CommitAuthorTime(ctx context.Context, ref string) (time.Time, error)
	GitDir(ctx context.Context) (string, error)

	// Branch management
	CreateBranch(ctx context.Context, name string) error
	Checkout(ctx context.Context, name string) error
	HardReset(ctx context.Context, branch, rev string) error
	// KeepReset moves the checked-out branch to rev and fails instead of
	// overwriting local changes.
	KeepReset(ctx context.Context, rev string) error
	ForceMoveBranch(ctx context.Context, name, rev string) error
	RenameBranch(ctx context.Context, oldName, newName string) error
	DeleteBranch(ctx context.Context, name string) error

	// Cherry-pick
	CherryPickRange(ctx context.Context, start, end, strategy string) (CherryPickResult, error)
	CherryPickContinue(ctx context.Context) (CherryPickResult, error)
	CherryPickAbort(ctx context.Context) error
	IsCherryPickInProgress(ctx context.Context) bool

	// Remote operations
	Fetch(ctx context.Context, remote, ref string) error
	Push(ctx context.Context, remote string, branches []string, force bool) error
	// DeleteRemoteBranch is best effort; callers may ignore its error.
	DeleteRemoteBranch(ctx context.Context, remote, name string) error

	// Config
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
	UnsetConfig(ctx context.Context, key string) error

	// RunInteractive hands the terminal to git, e.g. for diff or rebase -i.
	RunInteractive(ctx context.Context, args ...string) error
}

// NewRealRunner returns a Runner that drives the git binary in the process
// working directory.
func NewRealRunner() Runner {
	return NewRealRunnerWithDir("")
}

// NewRealRunnerWithDir returns a Runner that drives the git binary in dir.
func NewRealRunnerWithDir(dir string) Runner {
	return &realRunner{cmd: NewCommandRunner(dir)}
}

// NewRealRunnerWithLogger returns a Runner whose git invocations are logged at debug level.
func NewRealRunnerWithLogger(dir string, logger *slog.Logger) Runner {
	cmd := NewCommandRunner(dir)
	cmd.SetLogger(logger)
	return &realRunner{cmd: cmd}
}

// realRunner implements Runner: reads go through go-git, writes through the git binary.
type realRunner struct {
	cmd *CommandRunner
}

func (r *realRunner) RunInteractive(ctx context.Context, args ...string) error {
	return r.cmd.RunInteractive(ctx, args...)
}
