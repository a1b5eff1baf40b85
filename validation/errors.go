package validation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Error represents a validation error and the line and column where it occurred.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// NewError creates a validation error without source position information.
func NewError(format string, args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
	}
}

// NewNodeError creates a validation error positioned at the provided yaml node.
func NewNodeError(node *yaml.Node, format string, args ...any) *Error {
	e := NewError(format, args...)
	if node != nil {
		e.Line = node.Line
		e.Column = node.Column
	}
	return e
}
