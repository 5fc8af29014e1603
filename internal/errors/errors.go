// Package errors provides sentinel errors and custom error types for gg.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrRefNotFound indicates that a branch or ref does not exist
	ErrRefNotFound = errors.New("ref not found")

	// ErrNoPreviousBranch indicates that stack navigation had nothing to move to
	ErrNoPreviousBranch = errors.New("no previous branch")

	// ErrNotInStack indicates that a branch is not part of a positioned stack
	ErrNotInStack = errors.New("branch is not in a stack")

	// ErrNotInTransaction indicates that no rebase transaction is open
	ErrNotInTransaction = errors.New("no rebase in progress")

	// ErrTransactionInProgress indicates that a rebase transaction is already open for a branch
	ErrTransactionInProgress = errors.New("rebase already in progress")

	// ErrCherryPickConflict indicates that a cherry-pick paused on conflicting changes
	ErrCherryPickConflict = errors.New("cherry-pick conflict")

	// ErrGatewayCommandFailed indicates that the git binary exited non-zero
	ErrGatewayCommandFailed = errors.New("git command failed")

	// ErrMalformedTransactionMarker indicates temporary rebase branches that do not form a valid transaction
	ErrMalformedTransactionMarker = errors.New("malformed rebase marker")

	// ErrNotInitialized indicates that the naming config has not been written yet
	ErrNotInitialized = errors.New("gg not initialized")
)

// RefNotFoundError represents an error when a branch or ref is not found
type RefNotFoundError struct {
	Ref string
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("ref %s does not exist", e.Ref)
}

// Is returns true if the target error is ErrRefNotFound
func (e *RefNotFoundError) Is(target error) bool {
	return target == ErrRefNotFound
}

// NewRefNotFoundError creates a new RefNotFoundError
func NewRefNotFoundError(ref string) *RefNotFoundError {
	return &RefNotFoundError{Ref: ref}
}

// NoPreviousBranchError is returned when a branch has no sibling in the requested direction
type NoPreviousBranchError struct {
	BranchName string
	Direction  string
}

func (e *NoPreviousBranchError) Error() string {
	return fmt.Sprintf("no %s branch for %s", e.Direction, e.BranchName)
}

// Is returns true if the target error is ErrNoPreviousBranch
func (e *NoPreviousBranchError) Is(target error) bool {
	return target == ErrNoPreviousBranch
}

// NewNoPreviousBranchError creates a new NoPreviousBranchError
func NewNoPreviousBranchError(branchName, direction string) *NoPreviousBranchError {
	return &NoPreviousBranchError{BranchName: branchName, Direction: direction}
}

// NotInStackError is returned when a branch cannot be located among its siblings
type NotInStackError struct {
	BranchName string
}

func (e *NotInStackError) Error() string {
	return fmt.Sprintf("branch %s is not part of a stack", e.BranchName)
}

// Is returns true if the target error is ErrNotInStack
func (e *NotInStackError) Is(target error) bool {
	return target == ErrNotInStack
}

// NewNotInStackError creates a new NotInStackError
func NewNotInStackError(branchName string) *NotInStackError {
	return &NotInStackError{BranchName: branchName}
}

// CherryPickConflictError represents a cherry-pick that stopped on conflicts.
// It is an actionable state rather than a failure.
type CherryPickConflictError struct {
	BranchName string
	Onto       string
}

func (e *CherryPickConflictError) Error() string {
	if e.Onto != "" {
		return fmt.Sprintf("conflict while rebasing %s onto %s", e.BranchName, e.Onto)
	}
	return fmt.Sprintf("conflict while rebasing %s", e.BranchName)
}

// Is returns true if the target error is ErrCherryPickConflict
func (e *CherryPickConflictError) Is(target error) bool {
	return target == ErrCherryPickConflict
}

// NewCherryPickConflictError creates a new CherryPickConflictError
func NewCherryPickConflictError(branchName, onto string) *CherryPickConflictError {
	return &CherryPickConflictError{BranchName: branchName, Onto: onto}
}

// TransactionInProgressError is returned when markers already exist for a branch
type TransactionInProgressError struct {
	BranchName string
}

func (e *TransactionInProgressError) Error() string {
	return fmt.Sprintf("a rebase of %s is already in progress; run continue, abort or cleanup first", e.BranchName)
}

// Is returns true if the target error is ErrTransactionInProgress
func (e *TransactionInProgressError) Is(target error) bool {
	return target == ErrTransactionInProgress
}

// NewTransactionInProgressError creates a new TransactionInProgressError
func NewTransactionInProgressError(branchName string) *TransactionInProgressError {
	return &TransactionInProgressError{BranchName: branchName}
}

// MalformedTransactionMarkerError points at temporary branches that cannot be resolved
// to a transaction. This usually means the repository was changed by hand.
type MalformedTransactionMarkerError struct {
	Branches []string
	Reason   string
}

func (e *MalformedTransactionMarkerError) Error() string {
	return fmt.Sprintf("malformed rebase marker %v: %s", e.Branches, e.Reason)
}

// Is returns true if the target error is ErrMalformedTransactionMarker
func (e *MalformedTransactionMarkerError) Is(target error) bool {
	return target == ErrMalformedTransactionMarker
}

// NewMalformedTransactionMarkerError creates a new MalformedTransactionMarkerError
func NewMalformedTransactionMarkerError(branches []string, reason string) *MalformedTransactionMarkerError {
	return &MalformedTransactionMarkerError{Branches: branches, Reason: reason}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrGatewayCommandFailed
func (e *GitCommandError) Is(target error) bool {
	return target == ErrGatewayCommandFailed
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
