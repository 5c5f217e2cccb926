package tree

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty            = errors.New("empty tree node list")
	ErrUnresolvedParent = errors.New("unable to find parent node")
	ErrDuplicatePID     = errors.New("duplicate pid")
)

// UnresolvedParentError names the record whose structural parent is missing
type UnresolvedParentError struct {
	Name      string
	PID       int
	ParentPID int
}

func (e *UnresolvedParentError) Error() string {
	return fmt.Sprintf("unable to find parent node %d for: %s (pid %d)", e.ParentPID, e.Name, e.PID)
}

func (e *UnresolvedParentError) Unwrap() error {
	return ErrUnresolvedParent
}

// DuplicatePIDError reports two records claiming the same pid
type DuplicatePIDError struct {
	PID    int
	First  string
	Second string
}

func (e *DuplicatePIDError) Error() string {
	return fmt.Sprintf("duplicate pid %d: %q and %q", e.PID, e.First, e.Second)
}

func (e *DuplicatePIDError) Unwrap() error {
	return ErrDuplicatePID
}
