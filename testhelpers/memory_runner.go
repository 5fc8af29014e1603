package testhelpers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/git"
)

type memoryCommit struct {
	id      string
	parent  string
	message string
	when    time.Time
}

// MemoryRunner implements git.Runner over an in-memory commit graph. Commits
// form parent chains, branches point at commit ids and remote-tracking
// branches live under "<remote>/<name>".
type MemoryRunner struct {
	gitDir   string
	commits  map[string]memoryCommit
	branches map[string]string
	remotes  map[string]string
	current  string
	detached string
	config   map[string]string
	clock    time.Time
	seq      int

	conflicts map[string]bool
	pending   []memoryCommit
	preCherry string

	// Calls records every mutating call, e.g. "checkout main".
	Calls []string
}

var _ git.Runner = (*MemoryRunner)(nil)

// NewMemoryRunner creates a repository with a root commit on "main". gitDir
// is returned by GitDir and must exist when the hooks memo is used.
func NewMemoryRunner(gitDir string) *MemoryRunner {
	m := &MemoryRunner{
		gitDir:    gitDir,
		commits:   map[string]memoryCommit{},
		branches:  map[string]string{},
		remotes:   map[string]string{},
		config:    map[string]string{},
		conflicts: map[string]bool{},
		clock:     DefaultCommitTime,
	}
	m.branches["main"] = m.newCommit("", "root", m.clock)
	m.current = "main"
	return m
}

func (m *MemoryRunner) newCommit(parent, message string, when time.Time) string {
	m.seq++
	id := fmt.Sprintf("c%03d", m.seq)
	m.commits[id] = memoryCommit{id: id, parent: parent, message: message, when: when}
	return id
}

func (m *MemoryRunner) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

func (m *MemoryRunner) resolve(ref string) (string, bool) {
	if id, ok := m.branches[ref]; ok {
		return id, true
	}
	if id, ok := m.remotes[ref]; ok {
		return id, true
	}
	if _, ok := m.commits[ref]; ok {
		return ref, true
	}
	return "", false
}

// Commit adds a commit to the current branch, one minute after the previous one.
func (m *MemoryRunner) Commit(message string) string {
	m.clock = m.clock.Add(time.Minute)
	return m.CommitAt(message, m.clock)
}

// CommitAt adds a commit to the current branch with the given author time.
func (m *MemoryRunner) CommitAt(message string, when time.Time) string {
	id := m.newCommit(m.branches[m.current], message, when)
	m.branches[m.current] = id
	return id
}

// SetBranch points name at rev without checking it out.
func (m *MemoryRunner) SetBranch(name, rev string) {
	id, ok := m.resolve(rev)
	if !ok {
		panic("unknown rev " + rev)
	}
	m.branches[name] = id
}

// SetRemoteBranch points the remote-tracking branch remote/name at rev.
func (m *MemoryRunner) SetRemoteBranch(remote, name, rev string) {
	id, ok := m.resolve(rev)
	if !ok {
		panic("unknown rev " + rev)
	}
	m.remotes[remote+"/"+name] = id
}

// RemoteBranch returns the commit of remote/name, or "".
func (m *MemoryRunner) RemoteBranch(remote, name string) string {
	return m.remotes[remote+"/"+name]
}

// Branch returns the commit a local branch points at, or "".
func (m *MemoryRunner) Branch(name string) string {
	return m.branches[name]
}

// ConflictOn makes the next cherry-pick of a commit with this message stop.
func (m *MemoryRunner) ConflictOn(message string) {
	m.conflicts[message] = true
}

// Messages returns the commit messages reachable from ref down to (excluding) stop, newest first.
func (m *MemoryRunner) Messages(ref, stop string) []string {
	id, _ := m.resolve(ref)
	stopID, _ := m.resolve(stop)
	var out []string
	for id != "" && id != stopID {
		c := m.commits[id]
		out = append(out, c.message)
		id = c.parent
	}
	return out
}

// CountCalls returns how many recorded calls start with prefix.
func (m *MemoryRunner) CountCalls(prefix string) int {
	n := 0
	for _, c := range m.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (m *MemoryRunner) CurrentBranch(_ context.Context) (string, error) {
	if m.current == "" {
		return "", ggerrors.ErrNotOnBranch
	}
	return m.current, nil
}

func (m *MemoryRunner) ListBranches(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.branches))
	for name := range m.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryRunner) RefExists(_ context.Context, ref string) bool {
	_, ok := m.resolve(ref)
	return ok
}

func (m *MemoryRunner) CommitHash(_ context.Context, ref string) (string, error) {
	id, ok := m.resolve(ref)
	if !ok {
		return "", ggerrors.NewRefNotFoundError(ref)
	}
	return id, nil
}

func (m *MemoryRunner) CommitAuthorTime(_ context.Context, ref string) (time.Time, error) {
	id, ok := m.resolve(ref)
	if !ok {
		return time.Time{}, ggerrors.NewRefNotFoundError(ref)
	}
	return m.commits[id].when, nil
}

func (m *MemoryRunner) GitDir(_ context.Context) (string, error) {
	return m.gitDir, nil
}

func (m *MemoryRunner) CreateBranch(_ context.Context, name string) error {
	m.record("checkout -b %s", name)
	if _, exists := m.branches[name]; exists {
		return fmt.Errorf("branch %s already exists", name)
	}
	m.branches[name] = m.head()
	m.current = name
	m.detached = ""
	return nil
}

func (m *MemoryRunner) head() string {
	if m.current == "" {
		return m.detached
	}
	return m.branches[m.current]
}

func (m *MemoryRunner) Checkout(_ context.Context, name string) error {
	m.record("checkout %s", name)
	if _, ok := m.branches[name]; ok {
		m.current = name
		m.detached = ""
		return nil
	}
	id, ok := m.resolve(name)
	if !ok {
		return ggerrors.NewRefNotFoundError(name)
	}
	m.current = ""
	m.detached = id
	return nil
}

func (m *MemoryRunner) HardReset(ctx context.Context, branch, rev string) error {
	if m.current != branch {
		if err := m.Checkout(ctx, branch); err != nil {
			return err
		}
	}
	m.record("reset --hard %s", rev)
	id, ok := m.resolve(rev)
	if !ok {
		return ggerrors.NewRefNotFoundError(rev)
	}
	m.branches[branch] = id
	return nil
}

func (m *MemoryRunner) KeepReset(_ context.Context, rev string) error {
	m.record("reset --keep %s", rev)
	if m.current == "" {
		return ggerrors.ErrNotOnBranch
	}
	id, ok := m.resolve(rev)
	if !ok {
		return ggerrors.NewRefNotFoundError(rev)
	}
	m.branches[m.current] = id
	return nil
}

func (m *MemoryRunner) ForceMoveBranch(_ context.Context, name, rev string) error {
	m.record("branch -f %s %s", name, rev)
	if name == m.current {
		return fmt.Errorf("cannot force update the current branch %s", name)
	}
	id, ok := m.resolve(rev)
	if !ok {
		return ggerrors.NewRefNotFoundError(rev)
	}
	m.branches[name] = id
	return nil
}

func (m *MemoryRunner) RenameBranch(_ context.Context, oldName, newName string) error {
	m.record("branch -m %s %s", oldName, newName)
	id, ok := m.branches[oldName]
	if !ok {
		return ggerrors.NewRefNotFoundError(oldName)
	}
	if _, exists := m.branches[newName]; exists {
		return fmt.Errorf("branch %s already exists", newName)
	}
	delete(m.branches, oldName)
	m.branches[newName] = id
	if m.current == oldName {
		m.current = newName
	}
	return nil
}

func (m *MemoryRunner) DeleteBranch(_ context.Context, name string) error {
	m.record("branch -D %s", name)
	if _, ok := m.branches[name]; !ok {
		return ggerrors.NewRefNotFoundError(name)
	}
	if name == m.current {
		return fmt.Errorf("cannot delete the checked out branch %s", name)
	}
	delete(m.branches, name)
	return nil
}

// CherryPickRange walks first parents from end back to start.
func (m *MemoryRunner) CherryPickRange(_ context.Context, start, end, strategy string) (git.CherryPickResult, error) {
	if strategy != "" {
		m.record("cherry-pick %s..%s --strategy-option %s", start, end, strategy)
	} else {
		m.record("cherry-pick %s..%s", start, end)
	}
	if m.pending != nil {
		return git.CherryPickConflict, fmt.Errorf("a cherry-pick is already in progress")
	}
	startID, ok := m.resolve(start)
	if !ok {
		return git.CherryPickConflict, ggerrors.NewRefNotFoundError(start)
	}
	endID, ok := m.resolve(end)
	if !ok {
		return git.CherryPickConflict, ggerrors.NewRefNotFoundError(end)
	}

	var picks []memoryCommit
	for id := endID; id != "" && id != startID; id = m.commits[id].parent {
		picks = append([]memoryCommit{m.commits[id]}, picks...)
	}
	m.preCherry = m.branches[m.current]
	m.pending = picks
	return m.applyPending(false), nil
}

func (m *MemoryRunner) applyPending(resolved bool) git.CherryPickResult {
	for len(m.pending) > 0 {
		c := m.pending[0]
		if m.conflicts[c.message] && !resolved {
			delete(m.conflicts, c.message)
			return git.CherryPickConflict
		}
		resolved = false
		m.branches[m.current] = m.newCommit(m.branches[m.current], c.message, c.when)
		m.pending = m.pending[1:]
	}
	m.pending = nil
	return git.CherryPickDone
}

func (m *MemoryRunner) CherryPickContinue(_ context.Context) (git.CherryPickResult, error) {
	m.record("cherry-pick --continue")
	if m.pending == nil {
		return git.CherryPickConflict, fmt.Errorf("no cherry-pick in progress")
	}
	return m.applyPending(true), nil
}

func (m *MemoryRunner) CherryPickAbort(_ context.Context) error {
	m.record("cherry-pick --abort")
	if m.pending == nil {
		return fmt.Errorf("no cherry-pick in progress")
	}
	m.branches[m.current] = m.preCherry
	m.pending = nil
	return nil
}

func (m *MemoryRunner) IsCherryPickInProgress(_ context.Context) bool {
	return m.pending != nil
}

// Fetch fails when the remote-tracking branch does not exist.
func (m *MemoryRunner) Fetch(_ context.Context, remote, ref string) error {
	m.record("fetch -p %s %s", remote, ref)
	if _, ok := m.remotes[remote+"/"+ref]; !ok {
		return fmt.Errorf("couldn't find remote ref %s", ref)
	}
	return nil
}

func (m *MemoryRunner) Push(_ context.Context, remote string, branches []string, force bool) error {
	if force {
		m.record("push --force %s %s", remote, strings.Join(branches, " "))
	} else {
		m.record("push %s %s", remote, strings.Join(branches, " "))
	}
	for _, b := range branches {
		id, ok := m.branches[b]
		if !ok {
			return ggerrors.NewRefNotFoundError(b)
		}
		m.remotes[remote+"/"+b] = id
	}
	return nil
}

func (m *MemoryRunner) DeleteRemoteBranch(_ context.Context, remote, name string) error {
	m.record("push %s --delete %s", remote, name)
	key := remote + "/" + name
	if _, ok := m.remotes[key]; !ok {
		return fmt.Errorf("remote ref %s does not exist", name)
	}
	delete(m.remotes, key)
	return nil
}

func (m *MemoryRunner) GetConfig(_ context.Context, key string) (string, error) {
	return m.config[key], nil
}

func (m *MemoryRunner) SetConfig(_ context.Context, key, value string) error {
	m.record("config %s %s", key, value)
	m.config[key] = value
	return nil
}

func (m *MemoryRunner) UnsetConfig(_ context.Context, key string) error {
	m.record("config --unset %s", key)
	delete(m.config, key)
	return nil
}

// RunInteractive only records the invocation.
func (m *MemoryRunner) RunInteractive(_ context.Context, args ...string) error {
	m.record("%s", strings.Join(args, " "))
	return nil
}
