package usage

import "fmt"

// InvalidFlag is returned when a startup flag is not recognized.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("sw: invalid flag '%s'", flag),
	}
}
