package git

import (
	"context"
	"fmt"
)

// CherryPickRange replays the commits in (start, end] onto HEAD. A strategy,
// when given, is passed through as --strategy-option.
func (r *realRunner) CherryPickRange(ctx context.Context, start, end, strategy string) (CherryPickResult, error) {
	args := []string{"cherry-pick", fmt.Sprintf("%s..%s", start, end)}
	if strategy != "" {
		args = append(args, "--strategy-option", strategy)
	}

	if _, err := r.cmd.Run(ctx, args...); err != nil {
		if r.IsCherryPickInProgress(ctx) {
			return CherryPickConflict, nil
		}
		return CherryPickConflict, fmt.Errorf("cherry-pick %s..%s failed: %w", start, end, err)
	}
	return CherryPickDone, nil
}

// CherryPickContinue continues a paused cherry-pick without opening an editor
func (r *realRunner) CherryPickContinue(ctx context.Context) (CherryPickResult, error) {
	_, err := r.cmd.RunWithEnv(ctx, []string{"GIT_EDITOR=true"}, "cherry-pick", "--continue")
	if err != nil {
		// Check if the next commit of the range stopped again
		if r.IsCherryPickInProgress(ctx) {
			return CherryPickConflict, nil
		}
		return CherryPickConflict, fmt.Errorf("cherry-pick continue failed: %w", err)
	}
	return CherryPickDone, nil
}

// CherryPickAbort aborts an in-progress cherry-pick
func (r *realRunner) CherryPickAbort(ctx context.Context) error {
	_, err := r.cmd.Run(ctx, "cherry-pick", "--abort")
	if err != nil {
		return fmt.Errorf("cherry-pick abort failed: %w", err)
	}
	return nil
}

// IsCherryPickInProgress checks for CHERRY_PICK_HEAD
func (r *realRunner) IsCherryPickInProgress(ctx context.Context) bool {
	_, err := r.cmd.Run(ctx, "rev-parse", "-q", "--verify", "CHERRY_PICK_HEAD")
	return err == nil
}
