package actions

import (
	"fmt"

	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/config"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui"
	"gg.dev/gg/internal/tui/style"
	"gg.dev/gg/internal/utils"
)

// InitOptions contains options for the init command. Empty fields keep the
// existing config value, or are prompted for.
type InitOptions struct {
	MainBranch string
	Prefix     string
	Separator  string
	RepoOrg    string
	Remote     string
}

// InitAction writes the naming config of the repository
func InitAction(ctx *runtime.Context, opts InitOptions) error {
	cfg := &config.RepoConfig{}
	if existing, err := config.GetRepoConfig(ctx.GitDir); err == nil {
		cfg = existing
	}

	if opts.MainBranch != "" {
		cfg.MainBranch = opts.MainBranch
	}
	if opts.Prefix != "" {
		cfg.Prefix = opts.Prefix
	}
	if opts.Separator != "" {
		cfg.Separator = opts.Separator
	}
	if opts.RepoOrg != "" {
		cfg.RepoOrg = opts.RepoOrg
	}
	if opts.Remote != "" {
		cfg.Remote = opts.Remote
	}

	if cfg.MainBranch == "" {
		inferred := inferMainBranch(ctx)
		main, err := promptOrDefault("Main branch name:", inferred, "--main")
		if err != nil {
			return err
		}
		cfg.MainBranch = main
	}
	if cfg.Prefix == "" {
		prefix, err := promptOrDefault("Branch prefix (e.g. your initials):", "", "--prefix")
		if err != nil {
			return err
		}
		cfg.Prefix = prefix
	}
	if cfg.Separator == "" {
		cfg.Separator = branchname.DefaultSeparator
	}

	if err := config.SaveRepoConfig(ctx.GitDir, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	ctx.Config = cfg

	example := cfg.Codec().Encode(branchname.Identity{
		Prefix:    cfg.Prefix,
		HasPrefix: true,
		Base:      "feature",
		Position:  branchname.NewPosition(100),
	})
	ctx.Splog.Info("gg initialized. New branches will look like %s.", style.ColorBranchName(example, false))
	return nil
}

// inferMainBranch returns main or master, whichever exists locally
func inferMainBranch(ctx *runtime.Context) string {
	for _, name := range []string{"main", "master"} {
		if ctx.Runner.RefExists(ctx.Context, name) {
			return name
		}
	}
	return ""
}

// promptOrDefault asks for a value in interactive terminals. Otherwise it
// returns def, or an error naming the flag to pass when def is empty.
func promptOrDefault(prompt, def, flag string) (string, error) {
	if !utils.IsInteractive() {
		if def == "" {
			return "", fmt.Errorf("%s is required in non-interactive mode", flag)
		}
		return def, nil
	}
	return tui.PromptTextInput(prompt, def)
}
