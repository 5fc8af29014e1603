package actions

import (
	"gg.dev/gg/internal/rebase"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui/style"
)

// RebaseOptions contains options for the rebase command. Abort, Continue
// and Cleanup act on the open transaction instead of starting one.
type RebaseOptions struct {
	Onto     string // Defaults to the previous sibling
	Strategy string // Passed to cherry-pick as --strategy-option
	All      bool   // Propagate the rebase to every later sibling
	Abort    bool
	Continue bool
	Cleanup  bool // Close the transaction with the temporary branches as they are
}

// RebaseAction starts, continues, aborts or fixes up a segment rebase
func RebaseAction(ctx *runtime.Context, opts RebaseOptions) error {
	tx := ctx.Transaction()

	switch {
	case opts.Cleanup:
		return tx.Fixup(ctx.Context)
	case opts.Abort:
		return tx.Abort(ctx.Context)
	}

	var res rebase.Result
	if opts.Continue {
		var err error
		res, err = tx.Continue(ctx.Context)
		if err != nil {
			return err
		}
	} else {
		target, err := ctx.CurrentStackBranch()
		if err != nil {
			return err
		}
		res, err = tx.Start(ctx.Context, target, opts.Onto, opts.Strategy)
		if err != nil {
			return err
		}
	}

	if res == rebase.Conflict || !opts.All {
		return nil
	}
	return propagate(ctx, tx, opts.Strategy)
}

// propagate rebases the later siblings of the checked-out branch
func propagate(ctx *runtime.Context, tx *rebase.Transaction, strategy string) error {
	current, err := ctx.CurrentStackBranch()
	if err != nil {
		return err
	}

	p, err := tx.Propagate(ctx.Context, current, strategy)
	if err != nil {
		return err
	}
	if p.Conflicted != nil {
		ctx.Splog.Tip("After resolving, run %s to rebase the rest of the stack.",
			style.ColorCyan("gg rebase --continue --all"))
		return nil
	}
	if len(p.Rebased) > 0 {
		ctx.Splog.Info("Rebased %d later branches of the stack.", len(p.Rebased))
	}
	return nil
}
