package git

import (
	"context"
	"fmt"
)

// CreateBranch creates a branch at HEAD and checks it out
func (r *realRunner) CreateBranch(ctx context.Context, name string) error {
	_, err := r.cmd.Run(ctx, "checkout", "-b", name)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", name, err)
	}
	return nil
}

// Checkout checks out an existing branch or ref
func (r *realRunner) Checkout(ctx context.Context, name string) error {
	_, err := r.cmd.Run(ctx, "checkout", name)
	if err != nil {
		return fmt.Errorf("failed to checkout %s: %w", name, err)
	}
	return nil
}

// ForceMoveBranch creates name at rev, or moves it there if it exists.
// The branch must not be checked out.
func (r *realRunner) ForceMoveBranch(ctx context.Context, name, rev string) error {
	_, err := r.cmd.Run(ctx, "branch", "-f", name, rev)
	if err != nil {
		return fmt.Errorf("failed to move branch %s to %s: %w", name, rev, err)
	}
	return nil
}

// RenameBranch renames a branch
func (r *realRunner) RenameBranch(ctx context.Context, oldName, newName string) error {
	_, err := r.cmd.Run(ctx, "branch", "-m", oldName, newName)
	if err != nil {
		return fmt.Errorf("failed to rename branch %s to %s: %w", oldName, newName, err)
	}
	return nil
}

// DeleteBranch deletes a local branch
func (r *realRunner) DeleteBranch(ctx context.Context, name string) error {
	_, err := r.cmd.Run(ctx, "branch", "-D", name)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}
