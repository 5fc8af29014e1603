package actions

import (
	"errors"
	"fmt"

	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/config"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/rebase"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/utils"
)

// MigrateOptions contains options for the migrate command
type MigrateOptions struct {
	Prefix    string
	Separator string
	Yes       bool // Rename every branch without asking
}

// MigrateAction renames every managed branch into a new naming config and
// then rewrites the config.
func MigrateAction(ctx *runtime.Context, opts MigrateOptions) error {
	if opts.Prefix == "" || opts.Separator == "" {
		return fmt.Errorf("prefix and separator must not be empty")
	}
	if !opts.Yes && !utils.IsInteractive() {
		return fmt.Errorf("pass --yes to migrate in non-interactive mode")
	}

	if rec, err := rebase.OpenTransaction(ctx.Context, ctx.Runner, ctx.Codec()); err == nil {
		return ggerrors.NewTransactionInProgressError(rec.Full)
	} else if !errors.Is(err, ggerrors.ErrNotInTransaction) {
		return err
	}

	managed, err := ctx.Navigator().Managed(ctx.Context)
	if err != nil {
		return err
	}

	oldCodec := ctx.Codec()
	newCodec := branchname.NewCodec(branchname.Config{Prefix: opts.Prefix, Separator: opts.Separator})
	for _, id := range managed {
		moved := id.WithPrefix(opts.Prefix)
		oldFull, newFull := oldCodec.Encode(id), newCodec.Encode(moved)
		oldStart, newStart := oldCodec.EncodeStart(id), newCodec.EncodeStart(moved)
		if oldFull == newFull {
			continue
		}

		if !opts.Yes {
			ok, err := tui.PromptConfirm(fmt.Sprintf("Rename %s to %s and %s to %s?", oldFull, newFull, oldStart, newStart), true)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}

		if err := ctx.Runner.RenameBranch(ctx.Context, oldFull, newFull); err != nil {
			return err
		}
		if ctx.Runner.RefExists(ctx.Context, oldStart) {
			if err := ctx.Runner.RenameBranch(ctx.Context, oldStart, newStart); err != nil {
				return err
			}
		}
		ctx.Splog.Info("Renamed %s to %s.", oldFull, newFull)
	}

	ctx.Splog.Info("Fixing configuration!")
	if err := config.UpdatePrefixAndSeparator(ctx.GitDir, opts.Prefix, opts.Separator); err != nil {
		return err
	}
	ctx.Config.Prefix = opts.Prefix
	ctx.Config.Separator = opts.Separator
	return nil
}
