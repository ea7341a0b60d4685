// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss colors are chosen. Output
// lines carry a domain.Tone and are colored here according to the active
// theme. When disabled, all helpers return the input string unchanged.
package style

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

type styles struct {
	text    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	errorS  lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	prompt  lipgloss.Style
	panel   lipgloss.Style
	input   lipgloss.Style
	border  lipgloss.Style
}

var (
	mu        sync.RWMutex
	enabled   bool
	themeName = DefaultTheme
	overrides map[string]string
	colors    ColorConfig
	current   styles
)

// Init sets up styling from the merged configuration. NO_COLOR and
// SW_NO_COLOR disable styling regardless of enable. Call once from main
// before any output.
func Init(enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	themeName = ResolveThemeName(cfg)
	overrides = cfg

	if os.Getenv("NO_COLOR") != "" || os.Getenv("SW_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI256)
		apply()
	}
}

// SetTheme switches the active theme. Color overrides from the
// configuration still apply on top of it.
func SetTheme(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if !HasTheme(name) {
		return usage.UnknownTheme(name)
	}

	mu.Lock()
	defer mu.Unlock()

	themeName = name
	if enabled {
		apply()
	}
	return nil
}

// CurrentTheme returns the name of the active theme.
func CurrentTheme() string {
	mu.RLock()
	defer mu.RUnlock()
	return themeName
}

// GetColors returns the active colors. Empty when styling is disabled.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// apply rebuilds the styles; callers hold mu.
func apply() {
	colors = LoadColorConfig(themeName, overrides)

	current = styles{
		text:    makeStyle(colors.Text),
		success: makeStyle(colors.Success),
		warning: makeStyle(colors.Warning),
		errorS:  makeStyle(colors.Error),
		info:    makeStyle(colors.Info),
		muted:   makeStyle(colors.Muted),
		prompt:  makeStyle(colors.Prompt),
		panel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Text)).
			Background(lipgloss.Color(colors.Panel)),
		input: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Text)).
			Background(lipgloss.Color(colors.Input)),
		border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Border)),
	}
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or a color.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(pick func(s styles) lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return pick(current).Render(text)
}

// Tone renders text in the color the active theme assigns to tone.
func Tone(text string, tone domain.Tone) string {
	switch tone {
	case domain.ToneSuccess:
		return Success(text)
	case domain.ToneWarning:
		return Warning(text)
	case domain.ToneError:
		return Error(text)
	case domain.ToneInfo:
		return Info(text)
	case domain.ToneMuted:
		return Muted(text)
	case domain.TonePrompt:
		return Prompt(text)
	default:
		return render(func(s styles) lipgloss.Style { return s.text }, text)
	}
}

func Success(text string) string {
	return render(func(s styles) lipgloss.Style { return s.success }, text)
}

func Warning(text string) string {
	return render(func(s styles) lipgloss.Style { return s.warning }, text)
}

func Error(text string) string {
	return render(func(s styles) lipgloss.Style { return s.errorS }, text)
}

func Info(text string) string {
	return render(func(s styles) lipgloss.Style { return s.info }, text)
}

func Muted(text string) string {
	return render(func(s styles) lipgloss.Style { return s.muted }, text)
}

// Prompt styles the echoed "<cwd>> <line>" before each command.
func Prompt(text string) string {
	return render(func(s styles) lipgloss.Style { return s.prompt }, text)
}

// Header is used for banners and table headings.
func Header(text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return current.info.Bold(true).Render(text)
}

// Panel, InputLine and Border give the terminal front-end its frame. With
// styling disabled they are empty styles.
func Panel() lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return lipgloss.NewStyle()
	}
	return current.panel
}

func InputLine() lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return lipgloss.NewStyle()
	}
	return current.input
}

func Border() lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder())
	}
	return current.border
}
