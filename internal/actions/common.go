package actions

import (
	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/runtime"
)

// deleteBranchAll deletes name on the remote and locally. The remote delete
// is fire-and-forget since the branch may never have been pushed.
func deleteBranchAll(ctx *runtime.Context, name string) error {
	if err := ctx.Runner.DeleteRemoteBranch(ctx.Context, ctx.Remote(), name); err != nil {
		ctx.Splog.Debug("Ignoring failed remote delete of %s: %v", name, err)
	}
	if !ctx.Runner.RefExists(ctx.Context, name) {
		return nil
	}
	return ctx.Runner.DeleteBranch(ctx.Context, name)
}

// deleteSegment deletes the full and start branches of id
func deleteSegment(ctx *runtime.Context, id branchname.Identity) error {
	codec := ctx.Codec()
	if err := deleteBranchAll(ctx, codec.Encode(id)); err != nil {
		return err
	}
	return deleteBranchAll(ctx, codec.EncodeStart(id))
}

// remoteMain returns the remote-tracking ref of the main branch
func remoteMain(ctx *runtime.Context) string {
	return ctx.Remote() + "/" + ctx.Config.MainBranch
}

// decodeBranch decodes a full or start branch name into its identity
func decodeBranch(ctx *runtime.Context, name string) branchname.Identity {
	id, _ := ctx.Codec().DecodeAny(name)
	return id
}
