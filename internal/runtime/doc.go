// Package runtime provides the execution context for gg commands.
//
// It encapsulates shared dependencies needed by actions, such as the git
// runner, the naming config and the logger.
package runtime
