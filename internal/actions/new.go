package actions

import (
	"fmt"

	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/tui/style"
	"gg.dev/gg/internal/utils"
)

// NewOptions contains options for the new command
type NewOptions struct {
	Feature string // Start a new stack with this base name
	Part    string // Position of the new branch, defaults to the current one plus 1.0
	Main    bool   // Branch off the freshly fetched main branch
}

// NewAction creates the start and full branches of the next segment and
// checks out the full branch.
func NewAction(ctx *runtime.Context, opts NewOptions) error {
	if opts.Main {
		if err := ctx.Runner.Fetch(ctx.Context, ctx.Remote(), ctx.Config.MainBranch); err != nil {
			return err
		}
		if err := ctx.Runner.Checkout(ctx.Context, remoteMain(ctx)); err != nil {
			return err
		}
	}

	id, err := nextIdentity(ctx, opts)
	if err != nil {
		return err
	}

	codec := ctx.Codec()
	full := codec.Encode(id)
	start := codec.EncodeStart(id)
	for _, name := range []string{full, start} {
		if ctx.Runner.RefExists(ctx.Context, name) {
			return fmt.Errorf("branch %s already exists", name)
		}
	}

	if err := ctx.Runner.CreateBranch(ctx.Context, start); err != nil {
		return err
	}
	if err := ctx.Runner.CreateBranch(ctx.Context, full); err != nil {
		return err
	}
	ctx.Splog.Info("Created %s.", style.ColorBranchName(full, false))
	return nil
}

// nextIdentity derives the identity of the new branch from the checked-out
// one. A new feature starts a new stack at 1.0.
func nextIdentity(ctx *runtime.Context, opts NewOptions) (branchname.Identity, error) {
	var current branchname.Identity
	stacked := false
	if !opts.Main {
		if name, err := ctx.Runner.CurrentBranch(ctx.Context); err == nil {
			current = ctx.Codec().Decode(name)
			stacked = current.HasPrefix && current.Prefix == ctx.Config.Prefix
		}
	}

	feature := opts.Feature
	if feature == "" && !stacked {
		if !utils.IsInteractive() {
			return current, fmt.Errorf("--feature is required when not on a stack branch")
		}
		var err error
		feature, err = tui.PromptTextInput("Feature name:", "")
		if err != nil {
			return current, err
		}
	}

	id := current
	if !stacked {
		id = branchname.Identity{}
	}
	id = id.WithPrefix(ctx.Config.Prefix)

	if feature != "" {
		base := utils.SanitizeBranchName(feature)
		if err := utils.ValidateBaseName(base, ctx.Config.GetSeparator()); err != nil {
			return id, err
		}
		if base != id.Base {
			id = id.WithBase(base).WithPosition(branchname.Position{})
		}
	}

	if opts.Part != "" {
		pos, err := branchname.ParsePart(opts.Part)
		if err != nil {
			return id, err
		}
		return id.WithPosition(pos), nil
	}
	if id.Position.IsSet() {
		return id.WithPosition(id.Position.Add(100)), nil
	}
	return id.WithPosition(branchname.NewPosition(100)), nil
}
