package terminal

import (
	"io"
	"sync"

	"github.com/spaceworld/console/internal/config"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/ui"
	"github.com/spaceworld/console/internal/ui/style"
)

// Shell implements domain.Shell for the full-screen console. Requests made
// by actions are recorded here and picked up by the model after each
// submitted line.
type Shell struct {
	buf    *Buffer
	window *ui.Window

	// Settings and SetTheme are replaceable for tests.
	Settings func() (map[string]string, error)
	SetTheme func(name string) error

	mu           sync.Mutex
	exit         bool
	restart      bool
	settingsOpen bool
	settings     []string
}

func NewShell(buf *Buffer, term io.Writer) *Shell {
	return &Shell{
		buf:      buf,
		window:   ui.NewWindow(term),
		Settings: config.GetAll,
		SetTheme: style.SetTheme,
	}
}

func (s *Shell) Clear() {
	s.buf.Clear()
}

func (s *Shell) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exit = true
}

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

// ShowSettings toggles the settings drawer.
func (s *Shell) ShowSettings() error {
	s.mu.Lock()
	open := s.settingsOpen
	s.mu.Unlock()

	if open {
		s.CloseSettings()
		return nil
	}

	cfg, err := s.Settings()
	if err != nil {
		return err
	}
	lines := ui.SettingsLines(cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settingsOpen = true
	s.settings = lines
	return nil
}

func (s *Shell) CloseSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settingsOpen = false
	s.settings = nil
}

// SettingsView returns the drawer state and its lines.
func (s *Shell) SettingsView() (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settingsOpen, s.settings
}

func (s *Shell) ApplyTheme(name string) error {
	return s.SetTheme(name)
}

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
