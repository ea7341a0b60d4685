package plain

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/ui"
)

// Console is the part of a session the line-mode loop drives.
type Console interface {
	Suggester
	Submit(line string)
	Navigate(delta int) (string, bool)
}

type Options struct {
	Console    Console
	Shell      *Shell
	Writer     *ui.Writer
	WorkingDir func() string

	// Stdin and Stdout override the terminal, for tests.
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// Run reads lines until exit, end of input or an interrupt on an empty
// line. Up and down walk the session's history ledger; readline keeps no
// history of its own.
func Run(opts Options) error {
	if opts.Console == nil || opts.Shell == nil {
		return errors.New("plain: console and shell are required")
	}

	var rl *readline.Instance
	cfg := &readline.Config{
		Prompt:          prompt(opts.WorkingDir),
		AutoComplete:    completer{console: opts.Console},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    -1,
		Stdin:           opts.Stdin,
		Stdout:          opts.Stdout,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			line, handled := historyKey(opts.Console, r)
			if !handled {
				return r, true
			}
			if line != nil && rl != nil {
				rl.Operation.SetBuffer(*line)
			}
			return r, false
		},
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer func() { _ = rl.Close() }()

	if opts.Writer != nil {
		opts.Writer.SetHooks(rl.Clean, rl.Refresh)
		defer opts.Writer.SetHooks(nil, nil)
	}

	return loop(rl, opts)
}

// historyKey maps the previous and next keys to ledger navigation. It
// reports whether r was consumed and, when the ledger moved, the line to
// show.
func historyKey(c Console, r rune) (*string, bool) {
	var delta int
	switch r {
	case readline.CharPrev:
		delta = -1
	case readline.CharNext:
		delta = 1
	default:
		return nil, false
	}

	line, ok := c.Navigate(delta)
	if !ok {
		return nil, true
	}
	return &line, true
}

// lineReader is what loop needs from readline.Instance.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

func loop(rl lineReader, opts Options) error {
	for {
		rl.SetPrompt(prompt(opts.WorkingDir))

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if line == "" {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		opts.Console.Submit(line)
		if opts.Shell.ExitRequested() {
			return nil
		}
	}
}

func prompt(cwd func() string) string {
	if cwd == nil {
		return dispatchers.Sentinel + "> "
	}
	return cwd() + "> "
}
