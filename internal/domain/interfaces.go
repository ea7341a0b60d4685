package domain

// Tone is the semantic color class attached to an output line.
// Presentation layers map tones to theme colors; the core never renders.
type Tone int

const (
	ToneDefault Tone = iota
	ToneInfo
	ToneSuccess
	ToneWarning
	ToneError
	ToneMuted
	TonePrompt
)

func (t Tone) String() string {
	switch t {
	case ToneInfo:
		return "info"
	case ToneSuccess:
		return "success"
	case ToneWarning:
		return "warning"
	case ToneError:
		return "error"
	case ToneMuted:
		return "muted"
	case TonePrompt:
		return "prompt"
	default:
		return "default"
	}
}

// OutputSink is the append-only display surface the console writes to.
// Implementations must be safe for concurrent Append calls: background
// leaf actions report through the same sink as the interactive loop.
type OutputSink interface {
	Append(text string, tone Tone)
}

// Shell is the window the console is embedded in.
type Shell interface {
	// Clear empties the display surface.
	Clear()

	// Exit closes the shell.
	Exit()

	// Restart relaunches the application.
	Restart() error

	// Maximize and Minimize change the window state.
	Maximize()
	Minimize()

	// Resize sets the window size in cells.
	Resize(width, height int) error

	// ShowSettings opens the settings view.
	ShowSettings() error

	// ApplyTheme switches the active theme.
	ApplyTheme(name string) error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// HistoryStore persists submitted command lines across sessions.
type HistoryStore interface {
	// LoadHistory returns up to limit lines, oldest first. limit <= 0 means all.
	LoadHistory(limit int) ([]string, error)

	// AppendHistory stores the lines submitted during one session.
	AppendHistory(sessionID string, lines []string) error

	// Close closes the store connection.
	Close() error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Tone styles text with the color mapped to the given tone.
	Tone(text string, tone Tone) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config  ConfigProvider
	History HistoryStore
	Logger  Logger
	Styler  Styler
}
