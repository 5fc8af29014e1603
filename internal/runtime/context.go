package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/config"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/git"
	"gg.dev/gg/internal/github"
	"gg.dev/gg/internal/rebase"
	"gg.dev/gg/internal/stack"
	"gg.dev/gg/internal/tui"
)

// Context provides access to the repository and output for commands
type Context struct {
	Context context.Context
	Runner  git.Runner
	Config  *config.RepoConfig
	Splog   *tui.Splog
	GitDir  string

	// PRs is created on first use by PRService unless set
	PRs github.PRService
}

// NewContext creates a new context around an initialized repository
func NewContext(gctx context.Context, runner git.Runner, cfg *config.RepoConfig, splog *tui.Splog) *Context {
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Context: gctx,
		Runner:  runner,
		Config:  cfg,
		Splog:   splog,
	}
}

// GetContext opens the repository in the working directory and loads its
// naming config. Commands other than init require it.
func GetContext(gctx context.Context) (*Context, error) {
	ctx, err := GetUninitializedContext(gctx)
	if err != nil {
		return nil, err
	}

	cfg, err := config.GetRepoConfig(ctx.GitDir)
	if errors.Is(err, ggerrors.ErrNotInitialized) {
		return nil, fmt.Errorf("%w. Run 'gg init' first", err)
	}
	if err != nil {
		return nil, err
	}
	ctx.Config = cfg
	return ctx, nil
}

// GetUninitializedContext opens the repository without requiring GG_CONFIG
func GetUninitializedContext(gctx context.Context) (*Context, error) {
	if _, err := git.GetRepoRoot("."); err != nil {
		return nil, err
	}

	gitDir, err := git.NewRealRunner().GitDir(gctx)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath(gitDir), os.Stdout)
	if err != nil {
		return nil, err
	}

	ctx := NewContext(gctx, git.NewRealRunnerWithLogger("", splog.Logger()), nil, splog)
	ctx.GitDir = gitDir
	return ctx, nil
}

// Codec returns the branch name codec of the repository naming config
func (c *Context) Codec() branchname.Codec {
	return c.Config.Codec()
}

// Navigator returns a stack navigator over the repository
func (c *Context) Navigator() *stack.Navigator {
	return stack.NewNavigator(c.Runner, c.Codec())
}

// Transaction returns a rebase transaction over the repository
func (c *Context) Transaction() *rebase.Transaction {
	return rebase.NewTransaction(c.Runner, c.Codec(), c.Splog)
}

// Remote returns the configured remote name
func (c *Context) Remote() string {
	return c.Config.GetRemote()
}

// CurrentIdentity decodes the checked-out branch
func (c *Context) CurrentIdentity() (branchname.Identity, string, error) {
	name, err := c.Runner.CurrentBranch(c.Context)
	if err != nil {
		return branchname.Identity{}, "", err
	}
	return c.Codec().Decode(name), name, nil
}

// CurrentStackBranch decodes the checked-out branch and requires it to be a
// positioned branch in the configured namespace.
func (c *Context) CurrentStackBranch() (branchname.Identity, error) {
	id, name, err := c.CurrentIdentity()
	if err != nil {
		return id, err
	}
	if !id.HasPrefix || !id.Position.IsSet() {
		return id, ggerrors.NewNotInStackError(name)
	}
	return id, nil
}

// PRService returns the pull request service, creating a GitHub client from
// the remote URL on first use.
func (c *Context) PRService() (github.PRService, error) {
	if c.PRs != nil {
		return c.PRs, nil
	}
	remoteURL, err := c.Runner.GetConfig(c.Context, "remote."+c.Remote()+".url")
	if err != nil {
		return nil, err
	}
	if remoteURL == "" {
		return nil, fmt.Errorf("remote %s has no url", c.Remote())
	}
	client, err := github.NewClient(c.Context, remoteURL, c.Config.RepoOrg)
	if err != nil {
		return nil, err
	}
	c.PRs = client
	return c.PRs, nil
}
