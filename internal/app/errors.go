package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates the application was created without a backend.
	ErrNoBackend = errors.New("no backend")

	// ErrMissingArgument indicates a verb that needs an argument got none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnknownCommand indicates console text that resolved to no action.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownPalette indicates a palette name with no definition.
	ErrUnknownPalette = errors.New("unknown palette")

	// ErrInvalidLine indicates a go-to-line argument that is not a number.
	ErrInvalidLine = errors.New("invalid line number")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "save", "open", "delete")
	Target string // Target of the operation (e.g., file name, palette name)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError represents a failure while starting the application.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
