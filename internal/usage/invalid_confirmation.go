package usage

// InvalidConfirmation is returned when a pending destructive command
// receives anything other than y or n.
func InvalidConfirmation() *Error {
	return &Error{
		Kind:    ErrInvalidConfirmation,
		Message: "Please enter 'y' or 'n'.",
	}
}
