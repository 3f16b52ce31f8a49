package usage

import "fmt"

// InvalidArgumentValue is returned when an argument value cannot be parsed
// or falls outside its validation bounds.
func InvalidArgumentValue(arg, reason string) *Error {
	return &Error{
		Kind:     ErrInvalidArgumentValue,
		Argument: arg,
		Message:  fmt.Sprintf("dg: invalid value for argument '%s': %s", arg, reason),
	}
}

// UnexpectedArgument is returned when a positional value has no argument
// left to bind to.
func UnexpectedArgument(value string) *Error {
	return &Error{
		Kind:    ErrInvalidArgumentValue,
		Message: fmt.Sprintf("dg: unexpected argument '%s'", value),
	}
}
