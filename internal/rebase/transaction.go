package rebase

import (
	"context"
	"errors"
	"slices"

	"gg.dev/gg/internal/branchname"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/git"
	"gg.dev/gg/internal/stack"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/tui/style"
)

// Result represents the result of a rebase step
type Result int

const (
	// Done indicates the segment was rebased and the transaction closed
	Done Result = iota
	// FastForwarded indicates the segment was empty and both branches were moved
	FastForwarded
	// Conflict indicates the cherry-pick paused; the transaction stays open
	Conflict
)

func (r Result) String() string {
	switch r {
	case Done:
		return "done"
	case FastForwarded:
		return "fast-forwarded"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Transaction rebases segments of a stack
type Transaction struct {
	runner git.Runner
	codec  branchname.Codec
	nav    *stack.Navigator
	splog  *tui.Splog
}

// NewTransaction creates a Transaction
func NewTransaction(runner git.Runner, codec branchname.Codec, splog *tui.Splog) *Transaction {
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Transaction{
		runner: runner,
		codec:  codec,
		nav:    stack.NewNavigator(runner, codec),
		splog:  splog,
	}
}

// Start rebases the segment [start, full) of target onto onto. An empty onto
// means the previous sibling of target.
func (t *Transaction) Start(ctx context.Context, target branchname.Identity, onto, strategy string) (Result, error) {
	full := t.codec.Encode(target)
	start := t.codec.EncodeStart(target)

	if onto == "" {
		prev, found, err := t.nav.Navigate(ctx, target, stack.Direction{Kind: stack.Previous})
		if err != nil {
			return Done, err
		}
		if !found {
			return Done, ggerrors.NewNoPreviousBranchError(full, "previous")
		}
		onto = t.codec.Encode(prev)
	}
	if !t.runner.RefExists(ctx, onto) {
		return Done, ggerrors.NewRefNotFoundError(onto)
	}

	startHash, err := t.runner.CommitHash(ctx, start)
	if err != nil {
		return Done, err
	}
	fullHash, err := t.runner.CommitHash(ctx, full)
	if err != nil {
		return Done, err
	}

	if startHash == fullHash {
		if err := t.fastForward(ctx, []string{start, full}, onto); err != nil {
			return Done, err
		}
		t.splog.Info("There are no commits to rebase, fast forwarded %s", full)
		return FastForwarded, nil
	}

	if HasMarkers(ctx, t.runner, full, start) {
		return Done, ggerrors.NewTransactionInProgressError(full)
	}

	t.splog.Info("Rebasing %s onto %s via cherry-picks", full, onto)
	rec := Record{Full: full, Start: start}
	if err := t.open(ctx, rec, onto); err != nil {
		return Done, err
	}

	res, err := t.runner.CherryPickRange(ctx, start, full, strategy)
	if err != nil {
		return Done, err
	}
	if res == git.CherryPickConflict {
		t.reportConflict(full, onto)
		return Conflict, nil
	}
	return Done, t.finish(ctx, rec)
}

// open disables hooks and creates both markers on top of onto. Until both
// markers exist nothing can resume the transaction, so a failure here
// removes what was created and puts the hooks back.
func (t *Transaction) open(ctx context.Context, rec Record, onto string) error {
	if err := disableHooks(ctx, t.runner); err != nil {
		return t.undoOpen(ctx, err)
	}
	if err := t.runner.Checkout(ctx, onto); err != nil {
		return t.undoOpen(ctx, err)
	}
	if err := t.runner.CreateBranch(ctx, rec.TmpStart()); err != nil {
		return t.undoOpen(ctx, err)
	}
	if err := t.runner.CreateBranch(ctx, rec.TmpFull()); err != nil {
		_ = t.runner.Checkout(ctx, onto)
		_ = t.runner.DeleteBranch(ctx, rec.TmpStart())
		return t.undoOpen(ctx, err)
	}
	return nil
}

func (t *Transaction) undoOpen(ctx context.Context, cause error) error {
	if err := restoreHooks(ctx, t.runner); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// fastForward moves every branch to onto's commit. The checked-out branch
// goes first with reset --keep, so uncommitted edits that would be
// overwritten stop the move before any branch changes.
func (t *Transaction) fastForward(ctx context.Context, branches []string, onto string) error {
	target, err := t.runner.CommitHash(ctx, onto)
	if err != nil {
		return err
	}
	current, _ := t.runner.CurrentBranch(ctx)
	if slices.Contains(branches, current) {
		if err := t.runner.KeepReset(ctx, target); err != nil {
			return err
		}
	}
	for _, branch := range branches {
		if branch == current {
			continue
		}
		if err := t.runner.ForceMoveBranch(ctx, branch, target); err != nil {
			return err
		}
	}
	return nil
}

// Continue resumes the open transaction after the user resolved a conflict
func (t *Transaction) Continue(ctx context.Context) (Result, error) {
	rec, err := OpenTransaction(ctx, t.runner, t.codec)
	if err != nil {
		return Done, err
	}

	if t.runner.IsCherryPickInProgress(ctx) {
		res, err := t.runner.CherryPickContinue(ctx)
		if err != nil {
			return Done, err
		}
		if res == git.CherryPickConflict {
			t.reportConflict(rec.Full, "")
			return Conflict, nil
		}
	}
	return Done, t.finish(ctx, rec)
}

// Abort drops the open transaction and returns to the original branch
func (t *Transaction) Abort(ctx context.Context) error {
	rec, err := OpenTransaction(ctx, t.runner, t.codec)
	if err != nil {
		return err
	}

	if t.runner.IsCherryPickInProgress(ctx) {
		if err := t.runner.CherryPickAbort(ctx); err != nil {
			return err
		}
	}
	if err := t.runner.Checkout(ctx, rec.Full); err != nil {
		return err
	}
	if err := t.runner.DeleteBranch(ctx, rec.TmpFull()); err != nil {
		return err
	}
	if err := t.runner.DeleteBranch(ctx, rec.TmpStart()); err != nil {
		return err
	}
	if err := restoreHooks(ctx, t.runner); err != nil {
		return err
	}
	t.splog.Info("Aborted rebase of %s", rec.Full)
	return nil
}

// Fixup closes the open transaction with whatever the temporary branches
// hold, e.g. after the user finished the cherry-picks by hand.
func (t *Transaction) Fixup(ctx context.Context) error {
	rec, err := OpenTransaction(ctx, t.runner, t.codec)
	if err != nil {
		return err
	}
	return t.finish(ctx, rec)
}

// finish moves start and full onto their temporary branches and closes the transaction
func (t *Transaction) finish(ctx context.Context, rec Record) error {
	if err := t.runner.HardReset(ctx, rec.Start, rec.TmpStart()); err != nil {
		return err
	}
	if err := t.runner.HardReset(ctx, rec.Full, rec.TmpFull()); err != nil {
		return err
	}
	if err := t.runner.DeleteBranch(ctx, rec.TmpFull()); err != nil {
		return err
	}
	if err := t.runner.DeleteBranch(ctx, rec.TmpStart()); err != nil {
		return err
	}
	if err := restoreHooks(ctx, t.runner); err != nil {
		return err
	}
	t.splog.Info("Rebased %s", style.ColorBranchName(rec.Full, false))
	return nil
}

func (t *Transaction) reportConflict(full, onto string) {
	t.splog.Warn("%s", ggerrors.NewCherryPickConflictError(full, onto).Error())
	t.splog.Tip("Resolve the conflicts, then run %s or %s.",
		style.ColorCyan("gg rebase --continue"), style.ColorCyan("gg rebase --abort"))
}

// Navigator returns the navigator the transaction resolves siblings with
func (t *Transaction) Navigator() *stack.Navigator {
	return t.nav
}
