// Package sync updates the current segment from the remote when the remote
// copy is more recent.
package sync

import (
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui/style"
)

// Options contains options for the sync command
type Options struct {
	Force bool // Overwrite the local branches even when they are newer
}

// Outcome reports what Action did
type Outcome int

const (
	// Skipped means the local branch was at least as recent as the remote one
	Skipped Outcome = iota
	// Synced means full and start were moved to their remote commits
	Synced
)

func (o Outcome) String() string {
	if o == Synced {
		return "synced"
	}
	return "skipped"
}

// Action fetches the current full and start branches and moves them to the
// remote commits unless the local full branch is at least as recent.
func Action(ctx *runtime.Context, opts Options) (Outcome, error) {
	gctx := ctx.Context
	runner := ctx.Runner
	remote := ctx.Remote()

	current, full, err := ctx.CurrentIdentity()
	if err != nil {
		return Skipped, err
	}
	start := ctx.Codec().EncodeStart(current)
	remoteFull := remote + "/" + full
	remoteStart := remote + "/" + start

	if err := runner.Fetch(gctx, remote, full); err != nil {
		return Skipped, err
	}
	if err := runner.Fetch(gctx, remote, start); err != nil {
		return Skipped, err
	}

	localTime, err := runner.CommitAuthorTime(gctx, full)
	if err != nil {
		return Skipped, err
	}
	remoteTime, err := runner.CommitAuthorTime(gctx, remoteFull)
	if err != nil {
		return Skipped, err
	}

	if !opts.Force && !localTime.Before(remoteTime) {
		ctx.Splog.Info("%s is newer than %s", full, remoteFull)
		ctx.Splog.Tip("Use --force to override.")
		return Skipped, nil
	}

	if err := runner.HardReset(gctx, full, remoteFull); err != nil {
		return Skipped, err
	}
	if err := runner.ForceMoveBranch(gctx, start, remoteStart); err != nil {
		return Skipped, err
	}
	ctx.Splog.Info("Synced %s with %s.", style.ColorBranchName(full, true), remoteFull)
	return Synced, nil
}
