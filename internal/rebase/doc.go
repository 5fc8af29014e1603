// Package rebase moves one segment of a stack onto a new base by
// cherry-picking it, and propagates that move through the rest of the stack.
//
// A transaction is recorded only as two temporary branches, so an interrupted
// rebase can be resumed or aborted by a later process:
//
//	_tmp_-<full>   the cherry-picks land here
//	_tmp_-<start>  the new start of the segment
//
// Hooks are disabled while a transaction is open and restored when it ends.
package rebase
