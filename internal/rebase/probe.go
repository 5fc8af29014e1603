package rebase

import (
	"context"
	"fmt"
	"sort"

	"gg.dev/gg/internal/branchname"
	ggerrors "gg.dev/gg/internal/errors"
	"gg.dev/gg/internal/git"
)

// Record identifies an open transaction by the branches it rewrites.
type Record struct {
	Full  string
	Start string
}

// TmpFull is the branch the cherry-picks land on.
func (r Record) TmpFull() string {
	return branchname.TmpName(r.Full)
}

// TmpStart holds the new base of the segment.
func (r Record) TmpStart() string {
	return branchname.TmpName(r.Start)
}

// HasMarkers reports whether any transaction branch exists for the given full and start names.
func HasMarkers(ctx context.Context, runner git.Runner, full, start string) bool {
	return runner.RefExists(ctx, branchname.TmpName(full)) || runner.RefExists(ctx, branchname.TmpName(start))
}

// OpenTransaction finds the transaction recorded in the branch list. When
// several are open, the one whose temporary branch is checked out wins.
func OpenTransaction(ctx context.Context, runner git.Runner, codec branchname.Codec) (Record, error) {
	names, err := runner.ListBranches(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("failed to list branches: %w", err)
	}

	var tmps []string
	marked := map[string]bool{}
	for _, name := range names {
		if original, ok := branchname.FromTmp(name); ok {
			tmps = append(tmps, name)
			marked[original] = true
		}
	}
	if len(tmps) == 0 {
		return Record{}, ggerrors.ErrNotInTransaction
	}

	var records []Record
	paired := map[string]bool{}
	for original := range marked {
		id, isStart := codec.DecodeAny(original)
		if isStart {
			continue
		}
		start := codec.EncodeStart(id)
		if marked[start] {
			records = append(records, Record{Full: original, Start: start})
			paired[original] = true
			paired[start] = true
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Full < records[j].Full })

	var unpaired []string
	for _, tmp := range tmps {
		original, _ := branchname.FromTmp(tmp)
		if !paired[original] {
			unpaired = append(unpaired, tmp)
		}
	}

	switch {
	case len(records) == 0:
		return Record{}, ggerrors.NewMalformedTransactionMarkerError(tmps, "no matching full and start pair")
	case len(unpaired) > 0:
		return Record{}, ggerrors.NewMalformedTransactionMarkerError(unpaired, "temporary branch without a partner")
	case len(records) == 1:
		return records[0], nil
	}

	current, _ := runner.CurrentBranch(ctx)
	for _, r := range records {
		if current == r.TmpFull() || current == r.Full {
			return r, nil
		}
	}
	return Record{}, ggerrors.NewMalformedTransactionMarkerError(tmps, "several rebases are open; check out the one to resume")
}
