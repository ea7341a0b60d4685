package usage

import "fmt"

// IncorrectArguments is returned when a leaf action's arity check fails.
// Nothing has been mutated when this is returned.
func IncorrectArguments(usageLine string) *Error {
	msg := "Incorrect arguments"
	if usageLine != "" {
		msg = fmt.Sprintf("Incorrect arguments. Usage: %s", usageLine)
	}
	return &Error{
		Kind:    ErrIncorrectArguments,
		Message: msg,
	}
}
