// Package plain is the line-mode console: a readline prompt on a plain
// terminal, used when stdout is not a TTY or --plain is given.
package plain

import (
	"io"
	"sync"

	"github.com/spaceworld/console/internal/config"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/ui"
	"github.com/spaceworld/console/internal/ui/style"
)

// Shell implements domain.Shell for a line-mode terminal. Window requests
// become xterm control sequences; settings are printed inline.
type Shell struct {
	out    domain.OutputSink
	window *ui.Window

	// Settings and SetTheme are replaceable for tests.
	Settings func() (map[string]string, error)
	SetTheme func(name string) error

	mu      sync.Mutex
	exit    bool
	restart bool
}

// NewShell creates a Shell that prints through out and writes control
// sequences to term.
func NewShell(out domain.OutputSink, term io.Writer) *Shell {
	return &Shell{
		out:      out,
		window:   ui.NewWindow(term),
		Settings: config.GetAll,
		SetTheme: style.SetTheme,
	}
}

func (s *Shell) Clear() {
	s.window.ClearScreen()
}

func (s *Shell) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exit = true
}

// Restart ends the loop; the caller relaunches the binary once the session
// is closed.
func (s *Shell) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exit = true
	s.restart = true
	return nil
}

func (s *Shell) Maximize() {
	s.window.Maximize()
}

func (s *Shell) Minimize() {
	s.window.Minimize()
}

func (s *Shell) Resize(width, height int) error {
	return s.window.Resize(width, height)
}

func (s *Shell) ShowSettings() error {
	cfg, err := s.Settings()
	if err != nil {
		return err
	}
	s.out.Append("Settings", domain.ToneInfo)
	for _, line := range ui.SettingsLines(cfg) {
		s.out.Append(line, domain.ToneMuted)
	}
	return nil
}

func (s *Shell) ApplyTheme(name string) error {
	return s.SetTheme(name)
}

// ExitRequested reports whether exit or restart has been run.
func (s *Shell) ExitRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exit
}

func (s *Shell) RestartRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restart
}

var _ domain.Shell = (*Shell)(nil)
