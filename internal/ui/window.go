package ui

import (
	"fmt"
	"io"
)

// xterm window manipulation sequences (CSI Ps t). Terminals that do not
// support them ignore them.
const (
	seqMaximize = "\x1b[9;1t"
	seqRestore  = "\x1b[9;0t"
	seqMinimize = "\x1b[2t"
	seqClear    = "\x1b[H\x1b[2J"
)

// Window drives the hosting terminal window through control sequences.
type Window struct {
	out io.Writer
}

func NewWindow(out io.Writer) *Window {
	return &Window{out: out}
}

func (w *Window) Maximize() {
	_, _ = io.WriteString(w.out, seqMaximize)
}

// Restore leaves the maximized state.
func (w *Window) Restore() {
	_, _ = io.WriteString(w.out, seqRestore)
}

func (w *Window) Minimize() {
	_, _ = io.WriteString(w.out, seqMinimize)
}

// Resize asks for a text area of width columns by height rows.
func (w *Window) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	_, err := fmt.Fprintf(w.out, "\x1b[8;%d;%dt", height, width)
	return err
}

// ClearScreen erases the terminal and homes the cursor.
func (w *Window) ClearScreen() {
	_, _ = io.WriteString(w.out, seqClear)
}
