// Package ui holds what both console front-ends share: the line-mode output
// sink, xterm window control and the settings listing.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/ui/style"
)

// Writer is the line-mode output sink. Every Append becomes one styled line
// on out. Appends from background actions are serialized by mu.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	styler domain.Styler
	before func()
	after  func()

	// skipEcho drops prompt-echo lines. Line-mode terminals already show
	// what was typed after the prompt.
	skipEcho bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithStyler sets the styler used to color tones.
func WithStyler(s domain.Styler) WriterOption {
	return func(w *Writer) {
		w.styler = s
	}
}

// WithHooks runs before and after around every write. The line-mode console
// uses them to move the pending input line out of the way.
func WithHooks(before, after func()) WriterOption {
	return func(w *Writer) {
		w.before = before
		w.after = after
	}
}

// WithoutEcho drops lines carrying domain.TonePrompt.
func WithoutEcho() WriterOption {
	return func(w *Writer) {
		w.skipEcho = true
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:    out,
		styler: style.NopStyler{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Append implements domain.OutputSink.
func (w *Writer) Append(text string, tone domain.Tone) {
	if w.skipEcho && tone == domain.TonePrompt {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.before != nil {
		w.before()
	}
	_, _ = fmt.Fprintln(w.out, w.styler.Tone(text, tone))
	if w.after != nil {
		w.after()
	}
}

// SetHooks replaces the hooks installed by WithHooks. The line-mode console
// installs them once its line editor exists.
func (w *Writer) SetHooks(before, after func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.before = before
	w.after = after
}

// Write implements io.Writer for raw control sequences.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Verify Writer implements domain.OutputSink
var _ domain.OutputSink = (*Writer)(nil)
