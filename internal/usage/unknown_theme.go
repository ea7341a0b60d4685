package usage

import "fmt"

func UnknownTheme(name string) *Error {
	return &Error{
		Kind:    ErrUnknownTheme,
		Message: fmt.Sprintf("Unknown theme: %s", name),
	}
}
