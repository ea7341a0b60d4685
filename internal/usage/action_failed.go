package usage

// ActionFailed wraps an OS-level failure raised by a leaf action.
// The message of the cause is forwarded verbatim.
func ActionFailed(err error) *Error {
	return &Error{
		Kind:    ErrActionFailed,
		Message: err.Error(),
		Err:     err,
	}
}

// ActionFailedWith prefixes the cause with what the action was doing,
// as in "Error deleting file: <cause>".
func ActionFailedWith(doing string, err error) *Error {
	return &Error{
		Kind:    ErrActionFailed,
		Message: doing + ": " + err.Error(),
		Err:     err,
	}
}

// InvalidNumber is returned when an argument that must be an integer is not.
func InvalidNumber(message string) *Error {
	return &Error{
		Kind:    ErrIncorrectArguments,
		Message: message,
	}
}
