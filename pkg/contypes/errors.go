// Package contypes defines shared types for the devconsole command system.
// This file contains the bind-error taxonomy surfaced when raw literals
// cannot be converted into a command's typed arguments. All variants are
// recovered locally by the dispatcher and replied to the user; none are fatal.
package contypes

import "fmt"

// NotEnoughArgsError reports that fewer literals were supplied than the
// command's required parameters.
type NotEnoughArgsError struct{}

func (e NotEnoughArgsError) Error() string {
	return "[error] not enough arguments supplied"
}

// UnexpectedArgTypeError reports a literal whose tag does not match the
// requested argument type.
type UnexpectedArgTypeError struct {
	Expected ValueType
	Received ValueType
}

func (e UnexpectedArgTypeError) Error() string {
	return fmt.Sprintf("[error] expected argument type '%s', received '%s'", e.Expected, e.Received)
}

// ValueTooLargeError reports a numeric literal whose magnitude or precision
// does not fit the target numeric type.
type ValueTooLargeError struct {
	Value  float64
	Target string
}

func (e ValueTooLargeError) Error() string {
	return fmt.Sprintf("[error] value '%v' does not fit in argument type '%s'", e.Value, e.Target)
}

// CustomBindError carries a command-specific validation failure raised by a
// handler-provided converter.
type CustomBindError struct {
	Message string
}

func (e CustomBindError) Error() string {
	return fmt.Sprintf("[error] %s", e.Message)
}

// CustomBindErrorf builds a CustomBindError with fmt.Sprintf semantics.
func CustomBindErrorf(format string, args ...any) CustomBindError {
	return CustomBindError{Message: fmt.Sprintf(format, args...)}
}
