// Package config manages the gg naming configuration.
//
// The configuration lives in the repository's git dir as a small JSON file
// and supplies the branch prefix, the separator used inside branch names,
// the main branch and the remote that stacks are pushed to.
package config
