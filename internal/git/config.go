package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	ggerrors "gg.dev/gg/internal/errors"
)

// GetConfig returns a git config value, or "" when the key is not set
func (r *realRunner) GetConfig(ctx context.Context, key string) (string, error) {
	value, err := r.cmd.Run(ctx, "config", "--get", key)
	if err != nil {
		// git config exits 1 when the key is missing
		if exitCode(err) == 1 {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config %s: %w", key, err)
	}
	return value, nil
}

// SetConfig sets a repository-local git config value
func (r *realRunner) SetConfig(ctx context.Context, key, value string) error {
	_, err := r.cmd.Run(ctx, "config", key, value)
	if err != nil {
		return fmt.Errorf("failed to set config %s: %w", key, err)
	}
	return nil
}

// UnsetConfig removes a repository-local git config value. Missing keys are not an error.
func (r *realRunner) UnsetConfig(ctx context.Context, key string) error {
	_, err := r.cmd.Run(ctx, "config", "--unset", key)
	if err != nil {
		// exit code 5 means the key was not set
		if exitCode(err) == 5 {
			return nil
		}
		return fmt.Errorf("failed to unset config %s: %w", key, err)
	}
	return nil
}

func exitCode(err error) int {
	var cmdErr *ggerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return -1
	}
	var exitErr *exec.ExitError
	if errors.As(cmdErr.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
