// Package stack answers ordering questions about the branches of a stack.
package stack

import (
	"context"
	"fmt"
	"sort"

	"gg.dev/gg/internal/branchname"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/git"
)

// DirectionKind selects how Navigate moves through a stack
type DirectionKind int

const (
	// Next moves to the sibling right after the current branch
	Next DirectionKind = iota
	// Previous moves to the sibling right before the current branch
	Previous
	// StartOfStack moves to the lowest positioned sibling
	StartOfStack
	// ExactPosition moves to the sibling at a given position
	ExactPosition
)

// Direction is a navigation request
type Direction struct {
	Kind     DirectionKind
	Position branchname.Position
}

// At returns an ExactPosition direction
func At(p branchname.Position) Direction {
	return Direction{Kind: ExactPosition, Position: p}
}

func (d Direction) String() string {
	switch d.Kind {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case StartOfStack:
		return "first"
	case ExactPosition:
		return fmt.Sprintf("part-%s", d.Position)
	default:
		return "unknown"
	}
}

// Navigator orders the managed branches of a repository into stacks
type Navigator struct {
	runner git.Runner
	codec  branchname.Codec
}

// NewNavigator creates a Navigator
func NewNavigator(runner git.Runner, codec branchname.Codec) *Navigator {
	return &Navigator{runner: runner, codec: codec}
}

// Managed returns the identity of every branch in the configured namespace.
// Start markers and open transaction branches are not part of any stack.
func (n *Navigator) Managed(ctx context.Context) ([]branchname.Identity, error) {
	names, err := n.runner.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var managed []branchname.Identity
	for _, name := range names {
		if branchname.IsTmp(name) || !n.codec.IsManaged(name) {
			continue
		}
		id, start := n.codec.DecodeAny(name)
		if start {
			continue
		}
		managed = append(managed, id)
	}
	return managed, nil
}

// Siblings returns the managed branches of base ordered by position
func (n *Navigator) Siblings(ctx context.Context, base string) ([]branchname.Identity, error) {
	managed, err := n.Managed(ctx)
	if err != nil {
		return nil, err
	}

	var siblings []branchname.Identity
	for _, id := range managed {
		if id.Base == base {
			siblings = append(siblings, id)
		}
	}
	SortByPosition(siblings)
	return siblings, nil
}

// SortByPosition sorts identities ascending by position, keeping the
// relative order of equal and unpositioned entries.
func SortByPosition(ids []branchname.Identity) {
	sort.SliceStable(ids, func(i, j int) bool {
		return ids[i].Position.Less(ids[j].Position)
	})
}

// Locate returns the index of current among its siblings
func (n *Navigator) Locate(ctx context.Context, current branchname.Identity) (int, []branchname.Identity, error) {
	siblings, err := n.Siblings(ctx, current.Base)
	if err != nil {
		return -1, nil, err
	}
	idx := indexOf(siblings, current)
	if idx < 0 {
		return -1, siblings, ggerrors.NewNotInStackError(n.codec.Encode(current))
	}
	return idx, siblings, nil
}

func indexOf(siblings []branchname.Identity, current branchname.Identity) int {
	if !current.Position.IsSet() {
		return -1
	}
	for i, id := range siblings {
		if id.Position == current.Position {
			return i
		}
	}
	return -1
}

// Navigate returns the sibling in direction d from current. The boolean is
// false when there is no such branch.
func (n *Navigator) Navigate(ctx context.Context, current branchname.Identity, d Direction) (branchname.Identity, bool, error) {
	switch d.Kind {
	case StartOfStack:
		siblings, err := n.Siblings(ctx, current.Base)
		if err != nil {
			return branchname.Identity{}, false, err
		}
		for _, id := range siblings {
			if id.Position.IsSet() {
				return id, true, nil
			}
		}
		return branchname.Identity{}, false, nil
	case ExactPosition:
		siblings, err := n.Siblings(ctx, current.Base)
		if err != nil {
			return branchname.Identity{}, false, err
		}
		for _, id := range siblings {
			if id.Position.IsSet() && id.Position == d.Position {
				return id, true, nil
			}
		}
		return branchname.Identity{}, false, nil
	}

	idx, siblings, err := n.Locate(ctx, current)
	if err != nil {
		return branchname.Identity{}, false, err
	}

	switch d.Kind {
	case Next:
		if idx+1 >= len(siblings) {
			return branchname.Identity{}, false, nil
		}
		return siblings[idx+1], true, nil
	case Previous:
		if idx < 1 {
			return branchname.Identity{}, false, nil
		}
		return siblings[idx-1], true, nil
	}
	return branchname.Identity{}, false, fmt.Errorf("unknown direction %d", d.Kind)
}

// Children returns the siblings positioned after branch, in ascending order
func (n *Navigator) Children(ctx context.Context, branch branchname.Identity) ([]branchname.Identity, error) {
	siblings, err := n.Siblings(ctx, branch.Base)
	if err != nil {
		return nil, err
	}

	var children []branchname.Identity
	for _, id := range siblings {
		if branch.Position.Less(id.Position) {
			children = append(children, id)
		}
	}
	return children, nil
}

// Current decodes the checked-out branch
func (n *Navigator) Current(ctx context.Context) (branchname.Identity, error) {
	name, err := n.runner.CurrentBranch(ctx)
	if err != nil {
		return branchname.Identity{}, err
	}
	return n.codec.Decode(name), nil
}
