package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gg.dev/gg/internal/branchname"
	ggerrors "gg.dev/gg/internal/errors"
)

// FileName is the name of the config file inside the git dir
const FileName = "GG_CONFIG"

// DefaultRemote is used when no remote has been configured
const DefaultRemote = "origin"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	MainBranch string `json:"repo_main_branch"`
	Prefix     string `json:"branch_prefix"`
	RepoOrg    string `json:"repo_org,omitempty"`
	Separator  string `json:"branch_split,omitempty"`
	Remote     string `json:"remote,omitempty"`
}

// Path returns the location of the config file for gitDir
func Path(gitDir string) string {
	return filepath.Join(gitDir, FileName)
}

// GetRepoConfig reads the repository configuration. It returns
// ErrNotInitialized when no config has been written yet.
func GetRepoConfig(gitDir string) (*RepoConfig, error) {
	data, err := os.ReadFile(Path(gitDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: run 'gg init' first", ggerrors.ErrNotInitialized)
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// IsInitialized checks if gg has been initialized
func IsInitialized(gitDir string) bool {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return false
	}
	return config.Validate() == nil
}

// SaveRepoConfig validates and writes the repository configuration
func SaveRepoConfig(gitDir string, config *RepoConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(Path(gitDir), configJSON, 0600)
}

// UpdatePrefixAndSeparator rewrites the naming part of the config
func UpdatePrefixAndSeparator(gitDir, prefix, separator string) error {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return err
	}

	config.Prefix = prefix
	config.Separator = separator
	return SaveRepoConfig(gitDir, config)
}

// Validate checks that the config can name branches
func (c *RepoConfig) Validate() error {
	if c.MainBranch == "" {
		return fmt.Errorf("main branch must be set")
	}
	if c.Prefix == "" {
		return fmt.Errorf("branch prefix must be set")
	}
	return nil
}

// GetSeparator returns the configured separator, or "/" as default
func (c *RepoConfig) GetSeparator() string {
	if c.Separator == "" {
		return branchname.DefaultSeparator
	}
	return c.Separator
}

// GetRemote returns the configured remote, or "origin" as default
func (c *RepoConfig) GetRemote() string {
	if c.Remote == "" {
		return DefaultRemote
	}
	return c.Remote
}

// Naming returns the codec configuration
func (c *RepoConfig) Naming() branchname.Config {
	return branchname.Config{
		Prefix:    c.Prefix,
		Separator: c.GetSeparator(),
	}
}

// Codec returns a branch name codec for this config
func (c *RepoConfig) Codec() branchname.Codec {
	return branchname.NewCodec(c.Naming())
}
