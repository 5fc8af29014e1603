package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxBaseNameByteLength is the maximum length for a stack base name.
	// Leaves room below git's 256 byte ref limit for the prefix, the start
	// marker, the part suffix and the transaction marker.
	MaxBaseNameByteLength = 200
)

var (
	// BranchNameReplaceRegex matches characters that are not valid in branch names
	// Valid characters: letters, numbers, -, _, /, .
	BranchNameReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// BranchNameIgnoreRegex matches trailing slashes and dots that should be removed
	BranchNameIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	hyphenRegex = regexp.MustCompile(`-+`)
)

// SanitizeBranchName sanitizes a branch name by replacing invalid characters
func SanitizeBranchName(name string) string {
	// Remove trailing slashes and dots
	name = BranchNameIgnoreRegex.ReplaceAllString(name, "")

	// Replace invalid characters with hyphens
	name = BranchNameReplaceRegex.ReplaceAllString(name, "-")

	// Remove multiple consecutive hyphens
	name = hyphenRegex.ReplaceAllString(name, "-")

	// Trim leading/trailing hyphens
	name = strings.Trim(name, "-")

	if len(name) > MaxBaseNameByteLength {
		name = name[:MaxBaseNameByteLength]
		// Trim trailing hyphen if we cut at a hyphen
		name = strings.TrimSuffix(name, "-")
	}

	return name
}

// ValidateBaseName rejects base names that would not decode back to themselves
// under separator sep.
func ValidateBaseName(base, sep string) error {
	if base == "" {
		return fmt.Errorf("feature name is empty")
	}
	if strings.HasPrefix(base, "part-") || strings.Contains(base, sep+"part-") {
		return fmt.Errorf("feature name %q must not contain a part-N.N component", base)
	}
	if base == "starts" || strings.HasPrefix(base, "starts"+sep) {
		return fmt.Errorf("feature name %q must not start with the reserved word starts", base)
	}
	if strings.HasPrefix(base, "_tmp_-") {
		return fmt.Errorf("feature name %q must not start with the rebase marker", base)
	}
	return nil
}
