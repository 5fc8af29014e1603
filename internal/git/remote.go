package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	ggerrors "gg.dev/gg/internal/errors"
)

const remoteRetryMaxElapsed = 20 * time.Second

func newRemoteBackoff() backoff.BackOff {
	// BackOff implementations are stateful; always return a fresh instance.
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = remoteRetryMaxElapsed
	return bo
}

// isTransientRemoteError returns true for network failures worth retrying
func isTransientRemoteError(err error) bool {
	var cmdErr *ggerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	stderr := strings.ToLower(cmdErr.Stderr)
	for _, marker := range []string{
		"could not resolve host",
		"connection reset",
		"connection timed out",
		"the remote end hung up unexpectedly",
		"early eof",
		"operation timed out",
	} {
		if strings.Contains(stderr, marker) {
			return true
		}
	}
	return false
}

// withRemoteRetry retries op while it fails with transient network errors
func (r *realRunner) withRemoteRetry(ctx context.Context, op func() error) error {
	return backoff.Retry(func() error {
		err := op()
		if err != nil && isTransientRemoteError(err) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}, backoff.WithContext(newRemoteBackoff(), ctx))
}

// Fetch fetches ref from remote, updating its remote-tracking branch
func (r *realRunner) Fetch(ctx context.Context, remote, ref string) error {
	err := r.withRemoteRetry(ctx, func() error {
		_, err := r.cmd.Run(ctx, "fetch", "-p", remote, ref)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to fetch %s from %s: %w", ref, remote, err)
	}
	return nil
}

// Push pushes branches to remote, optionally with --force
func (r *realRunner) Push(ctx context.Context, remote string, branches []string, force bool) error {
	args := []string{"push"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, remote)
	args = append(args, branches...)

	err := r.withRemoteRetry(ctx, func() error {
		_, err := r.cmd.Run(ctx, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to push %s: %w", strings.Join(branches, ", "), err)
	}
	return nil
}

// DeleteRemoteBranch deletes name on remote and drops its remote-tracking branch.
// The branch may already be gone remotely, so callers usually ignore the error.
func (r *realRunner) DeleteRemoteBranch(ctx context.Context, remote, name string) error {
	_, err := r.cmd.Run(ctx, "push", remote, "--delete", name)
	// A successful push already pruned the tracking branch.
	tracking := remote + "/" + name
	if r.RefExists(ctx, "refs/remotes/"+tracking) {
		if _, trackErr := r.cmd.Run(ctx, "branch", "-D", "-r", tracking); trackErr != nil {
			err = errors.Join(err, trackErr)
		}
	}
	return err
}
