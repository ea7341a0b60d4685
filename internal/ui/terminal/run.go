package terminal

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type Options struct {
	Console    Console
	Shell      *Shell
	Buffer     *Buffer
	WorkingDir func() string
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Run shows the full-screen console until exit, restart or ^C.
func Run(opts Options) error {
	if opts.Console == nil || opts.Shell == nil || opts.Buffer == nil {
		return errors.New("terminal: console, shell and buffer are required")
	}
	if !IsInteractive() {
		return errors.New("the full-screen console requires an interactive terminal")
	}

	m := NewModel(opts.Console, opts.Shell, opts.Buffer, opts.WorkingDir)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
