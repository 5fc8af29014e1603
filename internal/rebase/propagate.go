package rebase

import (
	"context"
	"fmt"

	"gg.dev/gg/internal/branchname"
)

// Propagation reports how far a rebase travelled up the stack
type Propagation struct {
	Rebased []branchname.Identity
	// Conflicted is set when a child paused on a conflict; its transaction is open
	Conflicted *branchname.Identity
}

// Propagate rebases every child of current onto its previous sibling, lowest
// first. It stops at the first conflict. After the user continues or aborts,
// running Propagate again picks up the remaining children.
func (t *Transaction) Propagate(ctx context.Context, current branchname.Identity, strategy string) (Propagation, error) {
	var p Propagation

	children, err := t.nav.Children(ctx, current)
	if err != nil {
		return p, err
	}

	for _, child := range children {
		full := t.codec.Encode(child)
		if err := t.runner.Checkout(ctx, full); err != nil {
			return p, err
		}
		res, err := t.Start(ctx, child, "", strategy)
		if err != nil {
			return p, fmt.Errorf("failed to rebase %s: %w", full, err)
		}
		if res == Conflict {
			conflicted := child
			p.Conflicted = &conflicted
			return p, nil
		}
		p.Rebased = append(p.Rebased, child)
	}
	return p, nil
}
