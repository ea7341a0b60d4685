package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrIncorrectArguments
	ErrActionFailed
	ErrInvalidConfirmation
	ErrUnknownTheme
	ErrInvalidFlag
	ErrInvalidConfigKey
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownCommand:
		return "unknown_command"
	case ErrIncorrectArguments:
		return "incorrect_arguments"
	case ErrActionFailed:
		return "action_failed"
	case ErrInvalidConfirmation:
		return "invalid_confirmation"
	case ErrUnknownTheme:
		return "unknown_theme"
	case ErrInvalidFlag:
		return "invalid_flag"
	case ErrInvalidConfigKey:
		return "invalid_config_key"
	default:
		return "unknown"
	}
}

// Exit codes, only meaningful for errors raised before the console starts:
//
//	Exit 1: Environment/system errors
//	Exit 2: User input errors (invalid flag)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrInvalidConfigKey: 1,
}

// Error represents a user-facing error with semantic type information.
// None of these errors is fatal to the console: the dispatcher reports
// them to the output sink and keeps accepting input.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the process exit code for this error.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
