package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeBranchName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name passes through",
			input:    "feature",
			expected: "feature",
		},
		{
			name:     "spaces replaced with hyphens",
			input:    "my feature branch",
			expected: "my-feature-branch",
		},
		{
			name:     "special characters replaced",
			input:    "feature!@#$%^&*()",
			expected: "feature",
		},
		{
			name:     "underscores preserved",
			input:    "my_feature_branch",
			expected: "my_feature_branch",
		},
		{
			name:     "slashes preserved",
			input:    "feature/my-branch",
			expected: "feature/my-branch",
		},
		{
			name:     "dots preserved",
			input:    "feature.v1.0",
			expected: "feature.v1.0",
		},
		{
			name:     "trailing dots removed",
			input:    "feature...",
			expected: "feature",
		},
		{
			name:     "trailing slashes removed",
			input:    "feature///",
			expected: "feature",
		},
		{
			name:     "multiple consecutive hyphens collapsed",
			input:    "my---feature---branch",
			expected: "my-feature-branch",
		},
		{
			name:     "leading hyphens trimmed",
			input:    "---feature",
			expected: "feature",
		},
		{
			name:     "trailing hyphens trimmed",
			input:    "feature---",
			expected: "feature",
		},
		{
			name:     "mixed invalid characters",
			input:    "feat: add new feature!",
			expected: "feat-add-new-feature",
		},
		{
			name:     "numbers preserved",
			input:    "feature123",
			expected: "feature123",
		},
		{
			name:     "mixed case preserved",
			input:    "MyFeatureBranch",
			expected: "MyFeatureBranch",
		},
		{
			name:     "empty string returns empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only special chars returns empty",
			input:    "!@#$%",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := SanitizeBranchName(tt.input)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeBranchName_MaxLength(t *testing.T) {
	t.Parallel()

	// Create a string longer than MaxBaseNameByteLength
	longName := strings.Repeat("a", MaxBaseNameByteLength+50)

	result := SanitizeBranchName(longName)

	require.LessOrEqual(t, len(result), MaxBaseNameByteLength)
	require.Equal(t, MaxBaseNameByteLength, len(result))
}

func TestSanitizeBranchName_MaxLengthTrimsTrailingHyphen(t *testing.T) {
	t.Parallel()

	// Create a string that when truncated would end with a hyphen
	longName := strings.Repeat("a", MaxBaseNameByteLength-1) + "-" + strings.Repeat("b", 50)

	result := SanitizeBranchName(longName)

	require.LessOrEqual(t, len(result), MaxBaseNameByteLength)
	require.False(t, strings.HasSuffix(result, "-"), "result should not end with hyphen")
}

func TestValidateBaseName(t *testing.T) {
	t.Parallel()

	valid := []string{"feature", "team/feature", "partial", "my-part-1"}
	for _, base := range valid {
		require.NoError(t, ValidateBaseName(base, "/"), base)
	}

	invalid := []string{"", "part-1.0", "feature/part-2", "starts", "starts/feature", "_tmp_-feature"}
	for _, base := range invalid {
		require.Error(t, ValidateBaseName(base, "/"), base)
	}

	require.Error(t, ValidateBaseName("feature_part-1", "_"))
}
