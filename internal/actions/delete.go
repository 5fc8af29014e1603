package actions

import (
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/stack"
	"gg.dev/gg/internal/tui/style"
)

// DeleteOptions contains options for the delete command
type DeleteOptions struct {
	Branch string // Branch to delete, defaults to the current one
	Dest   string // Branch to checkout before deleting the current one
}

// DeleteAction deletes the full and start branches of a segment, locally and
// on the remote.
func DeleteAction(ctx *runtime.Context, opts DeleteOptions) error {
	current, currentName, err := ctx.CurrentIdentity()
	if err != nil && opts.Branch == "" {
		return err
	}

	target := current
	if opts.Branch != "" {
		target = decodeBranch(ctx, opts.Branch)
	}

	full := ctx.Codec().Encode(target)
	if full == currentName {
		dest := opts.Dest
		if dest == "" {
			dest = remoteMain(ctx)
			if prev, found, _ := ctx.Navigator().Navigate(ctx.Context, current, stack.Direction{Kind: stack.Previous}); found {
				dest = ctx.Codec().Encode(prev)
			}
		}
		if err := ctx.Runner.Checkout(ctx.Context, dest); err != nil {
			return err
		}
	}

	if err := deleteSegment(ctx, target); err != nil {
		return err
	}
	ctx.Splog.Info("Deleted %s.", style.ColorBranchName(full, false))
	return nil
}
