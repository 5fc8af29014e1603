package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	ggerrors "gg.dev/gg/internal/errors"
)

func TestIsTransientRemoteError(t *testing.T) {
	cmdErr := func(stderr string) error {
		return ggerrors.NewGitCommandError("git", []string{"fetch"}, "", stderr, errors.New("exit status 128"))
	}

	assert.True(t, isTransientRemoteError(cmdErr("fatal: unable to access: Could not resolve host: github.com")))
	assert.True(t, isTransientRemoteError(cmdErr("fatal: the remote end hung up unexpectedly")))
	assert.False(t, isTransientRemoteError(cmdErr("fatal: couldn't find remote ref missing")))
	assert.False(t, isTransientRemoteError(errors.New("could not resolve host")))
}
