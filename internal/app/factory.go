package app

import (
	"strconv"

	"github.com/spaceworld/console/internal/config"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/log"
	"github.com/spaceworld/console/internal/paths"
	"github.com/spaceworld/console/internal/store"
	"github.com/spaceworld/console/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Plain selects the line-mode console.
	Plain bool

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// HistoryLimit caps the lines loaded from the store; 0 loads all.
	HistoryLimit int

	// DatabasePath overrides the history database location.
	DatabasePath string
}

// DefaultOptions returns the options stored in the configuration file.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	plain, _ := config.Get("plain")
	styleConfig, _ := config.GetAll()

	limitValue, _ := config.Get("history_limit")
	limit, err := strconv.Atoi(limitValue)
	if err != nil || limit < 0 {
		limit = 0
	}

	return Options{
		Plain:        plain == "true",
		LogEnabled:   logEnabled == "true",
		LogLevel:     log.ParseLevel(logLevel),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
		HistoryLimit: limit,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		l, err := log.Init(paths.LogFilePath(), opts.LogLevel)
		if err == nil && l != nil {
			logger = l
		}
	}

	dbPath := opts.DatabasePath
	if dbPath == "" {
		dbPath = paths.DatabasePath()
	}
	historyStore, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &domain.Application{
		Config:  config.NewProvider(),
		History: historyStore,
		Logger:  logger,
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// History is kept in memory, logging and styling are off.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
