package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withColorProfile(t *testing.T, profile termenv.Profile) {
	t.Helper()
	previous := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(profile)
	t.Cleanup(func() { lipgloss.SetColorProfile(previous) })
}

func TestColorBranchName(t *testing.T) {
	withColorProfile(t, termenv.Ascii)

	assert.Equal(t, "me/feat/part-1.0", ColorBranchName("me/feat/part-1.0", false))
	assert.Equal(t, "me/feat/part-1.0 (current)", ColorBranchName("me/feat/part-1.0", true))
}

func TestColorsEmitANSI(t *testing.T) {
	withColorProfile(t, termenv.ANSI256)

	out := ColorRed("boom")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "\x1b[")
}

func TestGetBaseColor(t *testing.T) {
	_, ok := GetBaseColor("")
	assert.False(t, ok)

	first, ok := GetBaseColor("feature")
	require.True(t, ok)
	second, _ := GetBaseColor("feature")
	assert.Equal(t, first, second)
}

func TestColorStack(t *testing.T) {
	withColorProfile(t, termenv.Ascii)
	assert.Equal(t, "me/feat/part-1.0", ColorStack("me/feat/part-1.0", "feat"))

	withColorProfile(t, termenv.TrueColor)
	out := ColorStack("me/feat/part-1.0", "feat")
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, out, ColorStack("me/feat/part-1.0", "feat"))
	assert.Equal(t, "loose", ColorStack("loose", ""))
}

func TestColorPRState(t *testing.T) {
	withColorProfile(t, termenv.Ascii)

	tests := []struct {
		decision string
		closed   bool
		want     string
	}{
		{"APPROVED", false, "(Approved)"},
		{"CHANGES_REQUESTED", false, "(Changes Requested)"},
		{"REVIEW_REQUIRED", false, "(Review Required)"},
		{"", false, ""},
		{"APPROVED", true, "(Closed)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorPRState(tt.decision, tt.closed))
	}
}

func TestColorCIStatus(t *testing.T) {
	withColorProfile(t, termenv.Ascii)

	assert.Equal(t, "✓ CI", ColorCIStatus("success"))
	assert.Equal(t, "✗ CI", ColorCIStatus("error"))
	assert.Equal(t, "● CI", ColorCIStatus("pending"))
	assert.Empty(t, ColorCIStatus("unknown"))
}
