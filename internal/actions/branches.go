package actions

import (
	"fmt"
	"strings"

	"gg.dev/gg/internal/github"
	"gg.dev/gg/internal/runtime"
	"gg.dev/gg/internal/tui/style"
)

// BranchInfo is one row of the branch listing
type BranchInfo struct {
	Name     string
	Base     string
	Current  bool
	HasStart bool
	PR       *github.Pr
}

// ListBranches returns the local branches with their start marker and pull
// request. Pull requests are left out when GitHub cannot be reached.
func ListBranches(ctx *runtime.Context) ([]BranchInfo, error) {
	names, err := fullBranches(ctx)
	if err != nil {
		return nil, err
	}
	current, _ := ctx.Runner.CurrentBranch(ctx.Context)

	prs := map[string]github.Pr{}
	if prService, err := ctx.PRService(); err != nil {
		ctx.Splog.Debug("Skipping pull requests: %v", err)
	} else if found, err := prService.PrsForBranches(ctx.Context, names); err != nil {
		ctx.Splog.Debug("Skipping pull requests: %v", err)
	} else {
		prs = github.IndexByBranch(found)
	}

	codec := ctx.Codec()
	infos := make([]BranchInfo, 0, len(names))
	for _, name := range names {
		info := BranchInfo{
			Name:     name,
			Base:     codec.Decode(name).Base,
			Current:  name == current,
			HasStart: ctx.Runner.RefExists(ctx.Context, codec.EncodeStart(codec.Decode(name))),
		}
		if pr, ok := prs[name]; ok {
			info.PR = &pr
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// BranchesAction prints every local branch with its start marker and pull request status
func BranchesAction(ctx *runtime.Context) error {
	infos, err := ListBranches(ctx)
	if err != nil {
		return err
	}
	for _, info := range infos {
		ctx.Splog.Page(formatBranchInfo(info) + "\n")
	}
	return nil
}

func formatBranchInfo(info BranchInfo) string {
	marker := " "
	if info.Current {
		marker = style.ColorGreen("*")
	}
	start := "---"
	if info.HasStart {
		start = "w/s"
	}

	line := fmt.Sprintf("%s %s %s", marker, start, style.ColorStack(info.Name, info.Base))
	if info.PR == nil {
		return line
	}

	state := style.ColorGreen("Open")
	if info.PR.Closed {
		state = style.ColorRed("Closed")
	}
	parts := []string{info.PR.URL, "(" + state + ")"}
	if review := style.ColorPRState(info.PR.ReviewDecision, false); review != "" && !info.PR.Closed {
		parts = append(parts, review)
	}
	if ci := style.ColorCIStatus(info.PR.CIStatus); ci != "" {
		parts = append(parts, ci)
	}
	return line + "\t" + strings.Join(parts, " ")
}
