// Package actions provides the business logic behind the gg commands.
//
// Each action corresponds to a gg command (new, checkout, push, delete, etc.)
// and orchestrates the git runner, the branch name codec, the stack navigator
// and the rebase transaction.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the Runner, Config and Splog
//   - Actions are stateless; all state lives in the repository's branches
//   - Actions handle user interaction through the tui package and only prompt
//     when the terminal is interactive
package actions
