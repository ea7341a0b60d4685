// Package terminal is the full-screen console built on bubbletea: the
// output pane, the input line and the settings drawer.
package terminal

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spaceworld/console/internal/domain"
)

// Buffer is the output sink of the full-screen console. Lines wait here
// until the model drains them, so actions never call into bubbletea.
// Appends from background actions wake the model through a channel.
type Buffer struct {
	mu      sync.Mutex
	pending []bufferedLine
	cleared bool
	wake    chan struct{}
}

type bufferedLine struct {
	text string
	tone domain.Tone
}

func NewBuffer() *Buffer {
	return &Buffer{wake: make(chan struct{}, 1)}
}

// Append implements domain.OutputSink.
func (b *Buffer) Append(text string, tone domain.Tone) {
	b.mu.Lock()
	b.pending = append(b.pending, bufferedLine{text: text, tone: tone})
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Clear drops undrained lines and tells the next Drain to empty the pane.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = nil
	b.cleared = true
}

// Drain returns the lines appended since the last call, and whether the
// pane was cleared before them.
func (b *Buffer) Drain() ([]bufferedLine, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines, cleared := b.pending, b.cleared
	b.pending, b.cleared = nil, false
	return lines, cleared
}

type outputMsg struct{}

// waitForOutput blocks until something is appended.
func waitForOutput(b *Buffer) tea.Cmd {
	return func() tea.Msg {
		<-b.wake
		return outputMsg{}
	}
}

var _ domain.OutputSink = (*Buffer)(nil)
