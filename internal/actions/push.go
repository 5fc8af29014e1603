package actions

import (
	"strings"

	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/stack"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/tui/style"
	"gg.dev/gg/internal/utils"
)

// PushOptions contains options for the push command
type PushOptions struct {
	Force bool
	Start bool // Also push the start branch
}

// PushAction pushes the current branch, and its start branch when asked to
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	current, name, err := ctx.CurrentIdentity()
	if err != nil {
		return err
	}

	withStart := opts.Start
	if !withStart {
		_, hasPrev, _ := ctx.Navigator().Navigate(ctx.Context, current, stack.Direction{Kind: stack.Previous})
		if hasPrev {
			withStart, err = confirmPushStart(ctx)
			if err != nil {
				return err
			}
		}
	}

	branches := []string{name}
	if withStart {
		branches = append(branches, ctx.Codec().EncodeStart(current))
	}
	if err := ctx.Runner.Push(ctx.Context, ctx.Remote(), branches, opts.Force); err != nil {
		return err
	}
	ctx.Splog.Info("%s Pushed %s.", style.ColorGreen("Success!"), strings.Join(branches, ", "))
	return nil
}

func confirmPushStart(ctx *runtime.Context) (bool, error) {
	if !utils.IsInteractive() {
		ctx.Splog.Tip("This branch stacks on a previous one. Pass --start to push its start branch too.")
		return false, nil
	}
	return tui.PromptConfirm("This branch stacks on a previous one. Push the start branch as well?", true)
}
