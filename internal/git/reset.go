package git

import (
	"context"
	"fmt"
)

// HardReset checks out branch when needed and hard resets it to rev
func (r *realRunner) HardReset(ctx context.Context, branch, rev string) error {
	current, err := r.CurrentBranch(ctx)
	if err != nil || current != branch {
		if err := r.Checkout(ctx, branch); err != nil {
			return err
		}
	}
	_, err = r.cmd.Run(ctx, "reset", "--hard", rev)
	if err != nil {
		return fmt.Errorf("failed to hard reset %s to %s: %w", branch, rev, err)
	}
	return nil
}

// KeepReset resets the current branch to rev with --keep
func (r *realRunner) KeepReset(ctx context.Context, rev string) error {
	if _, err := r.cmd.Run(ctx, "reset", "--keep", rev); err != nil {
		return fmt.Errorf("failed to reset to %s, local changes would be lost: %w", rev, err)
	}
	return nil
}
