package rebase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gg.dev/gg/internal/git"
)

const (
	// HooksMemoFile holds the core.hooksPath value from before a transaction,
	// relative to the git dir. Empty content means the key was unset.
	HooksMemoFile = "gg_hooks_path"

	hooksPathKey      = "core.hooksPath"
	disabledHooksPath = "/dev/null"
)

func hooksMemoPath(ctx context.Context, runner git.Runner) (string, error) {
	gitDir, err := runner.GitDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, HooksMemoFile), nil
}

// disableHooks remembers the current hooks path and points git at /dev/null.
// An existing memo is kept so a second disable cannot record /dev/null.
func disableHooks(ctx context.Context, runner git.Runner) error {
	memo, err := hooksMemoPath(ctx, runner)
	if err != nil {
		return err
	}

	if _, err := os.Stat(memo); errors.Is(err, fs.ErrNotExist) {
		previous, err := runner.GetConfig(ctx, hooksPathKey)
		if err != nil {
			return err
		}
		if err := os.WriteFile(memo, []byte(previous), 0600); err != nil {
			return fmt.Errorf("failed to write hooks memo: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to read hooks memo: %w", err)
	}

	return runner.SetConfig(ctx, hooksPathKey, disabledHooksPath)
}

// restoreHooks puts back the hooks path recorded by disableHooks and removes
// the memo. Without a memo only a leftover /dev/null value is cleared.
func restoreHooks(ctx context.Context, runner git.Runner) error {
	memo, err := hooksMemoPath(ctx, runner)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(memo)
	if errors.Is(err, fs.ErrNotExist) {
		current, err := runner.GetConfig(ctx, hooksPathKey)
		if err != nil {
			return err
		}
		if current == disabledHooksPath {
			return runner.UnsetConfig(ctx, hooksPathKey)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read hooks memo: %w", err)
	}

	if previous := string(content); previous != "" {
		err = runner.SetConfig(ctx, hooksPathKey, previous)
	} else {
		err = runner.UnsetConfig(ctx, hooksPathKey)
	}
	if err != nil {
		return err
	}

	if err := os.Remove(memo); err != nil {
		return fmt.Errorf("failed to remove hooks memo: %w", err)
	}
	return nil
}
