package duitkit

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for an ID that is not in the store.
	ErrNotFound = errors.New("widget not found")

	// ErrInvalidParent is returned when a parent does not exist, or when
	// reparenting would make a widget its own ancestor.
	ErrInvalidParent = errors.New("invalid parent")
)

// Error describes a failed store operation on a widget.
type Error struct {
	Op  string // Operation that failed, e.g. "store.Get".
	ID  ID     // Widget the operation was about.
	Err error  // ErrNotFound or ErrInvalidParent, match with errors.Is.
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Op, e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(op string, id ID) error {
	return &Error{Op: op, ID: id, Err: ErrNotFound}
}

func invalidParent(op string, id ID) error {
	return &Error{Op: op, ID: id, Err: ErrInvalidParent}
}
