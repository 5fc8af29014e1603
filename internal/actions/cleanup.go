package actions

import (
	"fmt"

	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/tui/style"
	"gg.dev/gg/internal/utils"
)

// CleanupOptions contains options for the cleanup command
type CleanupOptions struct {
	Force bool // Delete without asking
}

// CleanupResult reports the branches cleanup deleted
type CleanupResult struct {
	Deleted []string
}

// CleanupAction deletes the branches whose pull request was closed or merged
func CleanupAction(ctx *runtime.Context, opts CleanupOptions) (*CleanupResult, error) {
	result := &CleanupResult{}

	prService, err := ctx.PRService()
	if err != nil {
		return result, err
	}

	branches, err := fullBranches(ctx)
	if err != nil {
		return result, err
	}
	prs, err := prService.PrsForBranches(ctx.Context, branches)
	if err != nil {
		return result, fmt.Errorf("failed to load pull requests: %w", err)
	}

	interactive := utils.IsInteractive()
	for _, pr := range prs {
		if !pr.Closed {
			continue
		}
		if !opts.Force {
			if !interactive {
				ctx.Splog.Info("Skipping %s (%s), pass --force to delete it.", pr.Branch, pr.URL)
				continue
			}
			ok, err := tui.PromptConfirm(fmt.Sprintf("Delete %s, %s, %q?", pr.Branch, pr.URL, pr.Title), false)
			if err != nil {
				return result, err
			}
			if !ok {
				continue
			}
		}

		id := decodeBranch(ctx, pr.Branch)
		if err := leaveBranch(ctx, ctx.Codec().Encode(id)); err != nil {
			return result, err
		}
		ctx.Splog.Info("Deleting %s and %s", ctx.Codec().Encode(id), ctx.Codec().EncodeStart(id))
		if err := deleteSegment(ctx, id); err != nil {
			return result, err
		}
		result.Deleted = append(result.Deleted, pr.Branch)
	}

	if len(result.Deleted) == 0 {
		ctx.Splog.Info("No closed branches to clean up.")
	}
	return result, nil
}

// leaveBranch checks out the main branch when name is checked out
func leaveBranch(ctx *runtime.Context, name string) error {
	current, err := ctx.Runner.CurrentBranch(ctx.Context)
	if err != nil || current != name {
		return nil
	}
	ctx.Splog.Info("Checking out %s.", style.ColorBranchName(ctx.Config.MainBranch, false))
	return ctx.Runner.Checkout(ctx.Context, ctx.Config.MainBranch)
}

// fullBranches lists local branches without start and rebase marker branches
func fullBranches(ctx *runtime.Context) ([]string, error) {
	names, err := ctx.Runner.ListBranches(ctx.Context)
	if err != nil {
		return nil, err
	}
	codec := ctx.Codec()
	var out []string
	for _, name := range names {
		if branchname.IsTmp(name) || codec.IsStart(name) {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}
