package actions

import (
	"fmt"

	"gg.dev/gg/internal/branchname"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/stack"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/tui/style"
	"gg.dev/gg/internal/utils"
)

// CheckoutOptions specifies options for the checkout command
type CheckoutOptions struct {
	Next  bool
	Prev  bool
	Start bool   // Checkout the first branch of the stack
	Part  string // Checkout the sibling at this position, e.g. "2.5"
}

// CheckoutAction checks out a sibling of the current branch
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	current, currentName, err := ctx.CurrentIdentity()
	if err != nil {
		return err
	}

	var target string
	direction, ok, err := checkoutDirection(opts)
	if err != nil {
		return err
	}
	if ok {
		id, found, err := ctx.Navigator().Navigate(ctx.Context, current, direction)
		if err != nil {
			return err
		}
		if !found {
			return ggerrors.NewNoPreviousBranchError(currentName, direction.String())
		}
		target = ctx.Codec().Encode(id)
	} else {
		target, err = selectSibling(ctx, current, currentName)
		if err != nil {
			return err
		}
	}

	if target == currentName {
		ctx.Splog.Info("Already on %s.", style.ColorBranchName(target, true))
		return nil
	}
	if err := ctx.Runner.Checkout(ctx.Context, target); err != nil {
		return err
	}
	ctx.Splog.Info("Checked out %s.", style.ColorBranchName(target, false))
	return nil
}

// checkoutDirection maps the flags to a direction. Part wins over the
// boolean flags. ok is false when no flag was given.
func checkoutDirection(opts CheckoutOptions) (stack.Direction, bool, error) {
	switch {
	case opts.Part != "":
		pos, err := branchname.ParsePart(opts.Part)
		if err != nil {
			return stack.Direction{}, false, err
		}
		return stack.At(pos), true, nil
	case opts.Next:
		return stack.Direction{Kind: stack.Next}, true, nil
	case opts.Prev:
		return stack.Direction{Kind: stack.Previous}, true, nil
	case opts.Start:
		return stack.Direction{Kind: stack.StartOfStack}, true, nil
	default:
		return stack.Direction{}, false, nil
	}
}

// selectSibling lets the user pick one of the branches of the current stack
func selectSibling(ctx *runtime.Context, current branchname.Identity, currentName string) (string, error) {
	if !utils.IsInteractive() {
		return "", fmt.Errorf("pass one of --next, --prev, --start or --part in non-interactive mode")
	}

	siblings, err := ctx.Navigator().Siblings(ctx.Context, current.Base)
	if err != nil {
		return "", err
	}
	if len(siblings) == 0 {
		return "", ggerrors.NewNotInStackError(currentName)
	}

	options := make([]tui.SelectOption, 0, len(siblings))
	defaultIndex := 0
	for i, sibling := range siblings {
		name := ctx.Codec().Encode(sibling)
		isCurrent := name == currentName
		if isCurrent {
			defaultIndex = i
		}
		options = append(options, tui.SelectOption{
			Label: style.ColorBranchName(name, isCurrent),
			Value: name,
		})
	}
	return tui.PromptSelect("Checkout a branch", options, defaultIndex)
}
