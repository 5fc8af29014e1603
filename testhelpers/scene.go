package testhelpers

import (
	"bytes"
	"path/filepath"
	"testing"

	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/config"
	"gg.dev/gg/internal/git"
)

// Scene represents a test scene with a temporary directory, an initialized
// gg repository and a Runner pointed at it.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	Config *config.RepoConfig
	Runner git.Runner
	// Output collects what commands run through Context printed
	Output *bytes.Buffer
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene and changes into its directory for the
// duration of the test.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		Runner: git.NewRealRunnerWithDir(tmpDir),
	}
	t.Chdir(tmpDir)
	t.Setenv("GG_NO_INTERACTIVE", "1")

	if err := scene.writeDefaultConfig(); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// writeDefaultConfig writes GG_CONFIG with prefix "me" and separator "/".
func (s *Scene) writeDefaultConfig() error {
	s.Config = &config.RepoConfig{
		MainBranch: "main",
		Prefix:     "me",
		Separator:  branchname.DefaultSeparator,
	}
	return config.SaveRepoConfig(s.GitDir(), s.Config)
}

// GitDir returns the .git directory of the scene repository.
func (s *Scene) GitDir() string {
	return filepath.Join(s.Dir, ".git")
}

// Codec returns the codec of the scene naming config.
func (s *Scene) Codec() branchname.Codec {
	return s.Config.Codec()
}

// Name encodes the full branch name for base at position x100.
func (s *Scene) Name(base string, x100 uint32) string {
	return s.Codec().Encode(s.Identity(base, x100))
}

// StartName encodes the start branch name for base at position x100.
func (s *Scene) StartName(base string, x100 uint32) string {
	return s.Codec().EncodeStart(s.Identity(base, x100))
}

// Identity returns the identity of base at position x100 in the scene namespace.
func (s *Scene) Identity(base string, x100 uint32) branchname.Identity {
	return branchname.Identity{
		Prefix:    s.Config.Prefix,
		HasPrefix: true,
		Base:      base,
		Position:  branchname.NewPosition(x100),
	}
}

// CreateSegment creates the start branch at the current HEAD, then the full
// branch with one commit per message, and leaves the full branch checked out.
func (s *Scene) CreateSegment(base string, x100 uint32, messages ...string) error {
	if err := s.Repo.CreateBranch(s.StartName(base, x100)); err != nil {
		return err
	}
	if err := s.Repo.CreateAndCheckoutBranch(s.Name(base, x100)); err != nil {
		return err
	}
	for _, msg := range messages {
		if err := s.Repo.CreateChangeAndCommit(msg, msg); err != nil {
			return err
		}
	}
	return nil
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
