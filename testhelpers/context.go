package testhelpers

import (
	"bytes"
	"context"
	"testing"

	"gg.dev/gg/internal/branchname"
	"gg.dev/gg/internal/config"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui"
)

// MemoryContext is a runtime context over an in-memory repository. Output
// collects everything the command printed.
type MemoryContext struct {
	Ctx    *runtime.Context
	Memory *MemoryRunner
	Output *bytes.Buffer
}

// NewMemoryContext creates an initialized in-memory repository with prefix
// "me", separator "/" and main branch "main".
func NewMemoryContext(t *testing.T) *MemoryContext {
	t.Helper()
	t.Setenv("GG_NO_INTERACTIVE", "1")

	gitDir := t.TempDir()
	cfg := &config.RepoConfig{
		MainBranch: "main",
		Prefix:     "me",
		Separator:  branchname.DefaultSeparator,
	}
	if err := config.SaveRepoConfig(gitDir, cfg); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig("", out)
	if err != nil {
		t.Fatalf("Failed to create splog: %v", err)
	}

	runner := NewMemoryRunner(gitDir)
	ctx := runtime.NewContext(context.Background(), runner, cfg, splog)
	ctx.GitDir = gitDir
	return &MemoryContext{Ctx: ctx, Memory: runner, Output: out}
}

// Codec returns the codec of the context naming config.
func (m *MemoryContext) Codec() branchname.Codec {
	return m.Ctx.Codec()
}

// Identity returns the identity of base at position x100 under prefix "me".
func (m *MemoryContext) Identity(base string, x100 uint32) branchname.Identity {
	return branchname.Identity{
		Prefix:    m.Ctx.Config.Prefix,
		HasPrefix: true,
		Base:      base,
		Position:  branchname.NewPosition(x100),
	}
}

// Segment creates start at the current tip and full with one commit per
// message, leaving full checked out.
func (m *MemoryContext) Segment(t *testing.T, base string, x100 uint32, messages ...string) branchname.Identity {
	t.Helper()
	id := m.Identity(base, x100)
	current, err := m.Memory.CurrentBranch(m.Ctx.Context)
	if err != nil {
		t.Fatalf("Failed to read current branch: %v", err)
	}
	m.Memory.SetBranch(m.Codec().EncodeStart(id), current)
	if err := m.Memory.CreateBranch(m.Ctx.Context, m.Codec().Encode(id)); err != nil {
		t.Fatalf("Failed to create segment: %v", err)
	}
	for _, msg := range messages {
		m.Memory.Commit(msg)
	}
	return id
}

// Context returns a runtime context over the scene repository. Its output
// goes to s.Output.
func (s *Scene) Context() *runtime.Context {
	if s.Output == nil {
		s.Output = &bytes.Buffer{}
	}
	splog, _ := tui.NewSplogWithConfig("", s.Output)
	ctx := runtime.NewContext(context.Background(), s.Runner, s.Config, splog)
	ctx.GitDir = s.GitDir()
	return ctx
}
