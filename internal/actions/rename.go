package actions

import (
	"fmt"

	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/tui/style"
	"gg.dev/gg/internal/utils"
)

// RenameOptions contains options for the rename command
type RenameOptions struct {
	NewName string
}

// RenameAction renames the current branch and its start branch to a new base
func RenameAction(ctx *runtime.Context, opts RenameOptions) error {
	current, currentName, err := ctx.CurrentIdentity()
	if err != nil {
		return err
	}

	newName := opts.NewName
	if newName == "" {
		if !utils.IsInteractive() {
			return fmt.Errorf("new name is required in non-interactive mode")
		}

		newName, err = tui.PromptTextInput("Enter new feature name:", current.Base)
		if err != nil {
			return err
		}
	}

	base := utils.SanitizeBranchName(newName)
	if err := utils.ValidateBaseName(base, ctx.Config.GetSeparator()); err != nil {
		return err
	}
	if base == current.Base {
		ctx.Splog.Info("Branch is already named %s.", currentName)
		return nil
	}

	codec := ctx.Codec()
	renamed := current.WithBase(base)
	newFull := codec.Encode(renamed)
	newStart := codec.EncodeStart(renamed)
	if ctx.Runner.RefExists(ctx.Context, newFull) {
		return fmt.Errorf("branch %s already exists", newFull)
	}

	if err := ctx.Runner.RenameBranch(ctx.Context, currentName, newFull); err != nil {
		return err
	}
	oldStart := codec.EncodeStart(current)
	if ctx.Runner.RefExists(ctx.Context, oldStart) {
		if err := ctx.Runner.RenameBranch(ctx.Context, oldStart, newStart); err != nil {
			return err
		}
	} else {
		ctx.Splog.Warn("No start branch %s found, renamed %s only.", oldStart, currentName)
	}

	ctx.Splog.Info("Renamed %s to %s.", currentName, style.ColorBranchName(newFull, true))
	return nil
}
