// Package utils provides shared utility functions for branch naming and
// terminal detection.
package utils
