package usage

import "fmt"

// InvalidConfigKey is returned when a config key is not known.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("Invalid config key: %s", key),
	}
}
