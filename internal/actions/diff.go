package actions

import (
	"gg.dev/gg/internal/runtime"
)

// DiffAction shows the changes of the current segment against its start branch
func DiffAction(ctx *runtime.Context) error {
	current, _, err := ctx.CurrentIdentity()
	if err != nil {
		return err
	}
	return ctx.Runner.RunInteractive(ctx.Context, "diff", ctx.Codec().EncodeStart(current))
}

// FixupAction opens an interactive rebase of the current segment onto its
// start branch, e.g. to squash fixup commits.
func FixupAction(ctx *runtime.Context) error {
	current, _, err := ctx.CurrentIdentity()
	if err != nil {
		return err
	}
	return ctx.Runner.RunInteractive(ctx.Context, "rebase", "-i", ctx.Codec().EncodeStart(current))
}

// FetchAction fetches the main branch from the remote
func FetchAction(ctx *runtime.Context) error {
	if err := ctx.Runner.Fetch(ctx.Context, ctx.Remote(), ctx.Config.MainBranch); err != nil {
		return err
	}
	ctx.Splog.Info("Fetched %s.", remoteMain(ctx))
	return nil
}
