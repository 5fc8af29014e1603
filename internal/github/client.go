// Package github looks up the pull requests opened for stack branches.
package github

import (
	"context"
)

// Pr is the state of the pull request opened for one branch
type Pr struct {
	Number int
	Closed bool
	Merged bool
	Title  string
	// Branch is the head branch name
	Branch string
	URL    string
	// ReviewDecision is APPROVED, CHANGES_REQUESTED, REVIEW_REQUIRED or empty
	ReviewDecision string
	// Mergeable is MERGEABLE, CONFLICTING or UNKNOWN
	Mergeable string
	// CIStatus is the combined commit status of the head: success, failure, error, pending or empty
	CIStatus string
}

// PRService is an interface for pull request lookups
type PRService interface {
	// PrsForBranches returns the pull requests found for any of branches.
	// Branches without a pull request are left out.
	PrsForBranches(ctx context.Context, branches []string) ([]Pr, error)

	// PrForBranch returns the pull request for branch, or nil if there is none
	PrForBranch(ctx context.Context, branch string) (*Pr, error)
}

// IndexByBranch maps pull requests by head branch
func IndexByBranch(prs []Pr) map[string]Pr {
	index := make(map[string]Pr, len(prs))
	for _, pr := range prs {
		index[pr.Branch] = pr
	}
	return index
}
