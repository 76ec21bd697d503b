package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business rule violations. All of them are local
// and recoverable: an operation that returns one has changed nothing.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBlankName indicates an empty trimmed name where one is required.
	ErrBlankName = errors.New("name must not be blank")

	// ErrNameTaken indicates a section or subsection name collides with an
	// existing one. Comparison is exact, case sensitive.
	ErrNameTaken = errors.New("name already in use")

	// ErrBuiltinSection indicates an attempt to remove a section declared
	// by the taxonomy registry. Only user-created sections are removable.
	ErrBuiltinSection = errors.New("built-in sections cannot be removed")

	// ErrNotCustomField indicates an attempt to remove a built-in field.
	ErrNotCustomField = errors.New("built-in fields cannot be removed")

	// ErrGapTerminal indicates a lifecycle operation on a gap that is
	// already resolved or ignored.
	ErrGapTerminal = errors.New("gap is in a terminal state")
)

// MissingRequiredError reports a save attempted while required fields are
// unfilled. The presentation layer surfaces it as a "save anyway?"
// confirmation and retries with the force option; nothing is written until
// then.
type MissingRequiredError struct {
	// Fields are the unfilled required fields, in collection order.
	Fields []Field
}

// Error implements the error interface.
func (e *MissingRequiredError) Error() string {
	labels := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		labels[i] = f.Label
	}
	return fmt.Sprintf("%d required fields missing: %s", len(e.Fields), strings.Join(labels, ", "))
}
