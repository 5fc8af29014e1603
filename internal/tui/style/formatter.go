// Package style holds the lipgloss styles gg prints with.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StackColors is the palette stacks are colored with, one color per base name.
var StackColors = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{110, 173, 38},  // Dark green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{244, 98, 81},   // Red
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
	{80, 132, 243},  // Blue
}

func colored(code, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(code)).
		Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string { return colored("1", text) }

// ColorGreen colors text green
func ColorGreen(text string) string { return colored("2", text) }

// ColorYellow colors text yellow
func ColorYellow(text string) string { return colored("3", text) }

// ColorMagenta colors text magenta
func ColorMagenta(text string) string { return colored("5", text) }

// ColorCyan colors text cyan
func ColorCyan(text string) string { return colored("6", text) }

// ColorDim makes text dim/gray
func ColorDim(text string) string { return colored("8", text) }

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Render(branchName + " (current)")
	}
	return colored("12", branchName)
}

// GetBaseColor returns a deterministic palette color for a stack base name
func GetBaseColor(base string) (lipgloss.Color, bool) {
	if base == "" {
		return lipgloss.Color(""), false
	}
	var hash uint32
	for i := 0; i < len(base); i++ {
		hash = uint32(base[i]) + (hash << 6) + (hash << 16) - hash
	}
	color := StackColors[hash%uint32(len(StackColors))]
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2])), true
}

// ColorStack colors text with the palette color of the stack base, so
// siblings share a color in listings
func ColorStack(text, base string) string {
	if color, ok := GetBaseColor(base); ok {
		return lipgloss.NewStyle().Foreground(color).Render(text)
	}
	return text
}

// ColorPRState colors a pull request review decision
func ColorPRState(reviewDecision string, closed bool) string {
	if closed {
		return ColorDim("(Closed)")
	}

	switch reviewDecision {
	case "APPROVED":
		return ColorGreen("(Approved)")
	case "CHANGES_REQUESTED":
		return ColorMagenta("(Changes Requested)")
	case "REVIEW_REQUIRED":
		return ColorYellow("(Review Required)")
	default:
		return ""
	}
}

// ColorCIStatus colors a combined commit status
func ColorCIStatus(state string) string {
	switch state {
	case "success":
		return ColorGreen("✓ CI")
	case "failure", "error":
		return ColorRed("✗ CI")
	case "pending":
		return ColorYellow("● CI")
	default:
		return ""
	}
}
