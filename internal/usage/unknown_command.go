package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no grammar node matches the submitted verb
// or subcommand. Suggestions, if any, are appended as a hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("Unknown command: %s", command)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
