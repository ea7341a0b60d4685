package testutil

import (
	"strings"
	"sync"

	"github.com/spaceworld/console/internal/domain"
)

// Line is one recorded Append call.
type Line struct {
	Text string
	Tone domain.Tone
}

// Sink records everything appended to it. Safe for concurrent use.
type Sink struct {
	mu    sync.Mutex
	lines []Line
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Append(text string, tone domain.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, Line{Text: text, Tone: tone})
}

func (s *Sink) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Texts returns the recorded text without tones.
func (s *Sink) Texts() []string {
	lines := s.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// Last returns the most recent line, or a zero Line.
func (s *Sink) Last() Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return Line{}
	}
	return s.lines[len(s.lines)-1]
}

func (s *Sink) String() string {
	return strings.Join(s.Texts(), "\n")
}

func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

var _ domain.OutputSink = (*Sink)(nil)

// Shell is a domain.Shell that records the calls it receives.
type Shell struct {
	mu    sync.Mutex
	Calls []string

	Theme         string
	Width, Height int

	RestartErr  error
	ResizeErr   error
	SettingsErr error
	ThemeErr    error
}

func (s *Shell) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, call)
}

func (s *Shell) Clear()    { s.record("clear") }
func (s *Shell) Exit()     { s.record("exit") }
func (s *Shell) Maximize() { s.record("maximize") }
func (s *Shell) Minimize() { s.record("minimize") }

func (s *Shell) Restart() error {
	s.record("restart")
	return s.RestartErr
}

func (s *Shell) Resize(width, height int) error {
	s.record("resize")
	if s.ResizeErr != nil {
		return s.ResizeErr
	}
	s.Width, s.Height = width, height
	return nil
}

func (s *Shell) ShowSettings() error {
	s.record("settings")
	return s.SettingsErr
}

func (s *Shell) ApplyTheme(name string) error {
	s.record("theme")
	if s.ThemeErr != nil {
		return s.ThemeErr
	}
	s.Theme = name
	return nil
}

var _ domain.Shell = (*Shell)(nil)
