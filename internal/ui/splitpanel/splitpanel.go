// Package splitpanel lays out the full-screen console: the scrolling output
// pane and, when open, the settings drawer beside it.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spaceworld/console/internal/ui/style"
)

// Panel is the content of one box.
type Panel struct {
	Title      string
	Lines      []string // visible lines, already scrolled
	ScrollPos  int      // first visible line, for the scrollbar
	TotalItems int      // total lines; 0 means len(Lines)
}

// Config holds layout configuration
type Config struct {
	DrawerWidthPercent float64 // e.g. 0.35 for 35%
	DrawerMinWidth     int
	DrawerMaxWidth     int
}

// DefaultConfig is the layout the console uses.
func DefaultConfig() Config {
	return Config{
		DrawerWidthPercent: 0.35,
		DrawerMinWidth:     28,
		DrawerMaxWidth:     56,
	}
}

// Layout holds computed dimensions and renders the panes.
type Layout struct {
	Width       int
	Height      int
	OutputWidth int
	DrawerWidth int
	DrawerOpen  bool
	Colors      style.ColorConfig
	config      Config
}

// NewLayout creates a layout for a terminal width columns wide.
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	return &Layout{
		Width:       width,
		OutputWidth: width,
		Colors:      colors,
		config:      cfg,
	}
}

// SetDrawerOpen sets drawer state and recalculates widths. The drawer is
// never wider than half the screen.
func (l *Layout) SetDrawerOpen(open bool) {
	l.DrawerOpen = open
	if !open {
		l.DrawerWidth = 0
		l.OutputWidth = l.Width
		return
	}

	drawer := int(float64(l.Width) * l.config.DrawerWidthPercent)
	drawer = max(drawer, l.config.DrawerMinWidth)
	if l.config.DrawerMaxWidth > 0 {
		drawer = min(drawer, l.config.DrawerMaxWidth)
	}
	drawer = min(drawer, l.Width/2)

	l.DrawerWidth = drawer
	l.OutputWidth = l.Width - drawer
}

// Render draws the output pane, plus the drawer when it is open and given.
// The output pane holds focus unless the drawer is open.
func (l *Layout) Render(output Panel, drawer *Panel, height int) string {
	l.Height = height

	outputStr := l.buildPanel(output, l.OutputWidth, height, !l.DrawerOpen)
	if drawer == nil || !l.DrawerOpen || l.DrawerWidth == 0 {
		return outputStr
	}

	drawerStr := l.buildPanel(*drawer, l.DrawerWidth, height, true)
	return lipgloss.JoinHorizontal(lipgloss.Top, outputStr, drawerStr)
}

// buildPanel creates a single panel with border and scrollbar
func (l *Layout) buildPanel(panel Panel, width, height int, focused bool) string {
	// border(2) + padding(2) + scrollbar(2)
	contentWidth := max(width-6, 1)
	visibleHeight := max(height-2, 1)

	lines := panel.Lines
	if panel.Title != "" {
		lines = append([]string{panel.Title}, lines...)
	}
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	bar := scrollbar{height: visibleHeight, total: totalItems, offset: panel.ScrollPos}.render(l.Colors, focused)

	result := make([]string, 0, len(lines))
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentWidth {
			line = truncateString(line, contentWidth)
		} else if lineWidth < contentWidth {
			line += strings.Repeat(" ", contentWidth-lineWidth)
		}

		scrollChar := " "
		if i < len(bar) {
			scrollChar = bar[i]
		}
		result = append(result, line+" "+scrollChar)
	}

	borderColor := lipgloss.Color(l.Colors.Muted)
	if focused {
		borderColor = lipgloss.Color(l.Colors.Border)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return box.Render(strings.Join(result, "\n"))
}

// truncateString cuts s to maxWidth cells and marks the cut with "...".
func truncateString(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth-3 {
			return candidate + "..."
		}
	}
	return "..."
}

// OutputContentWidth returns usable width inside the output pane.
func (l *Layout) OutputContentWidth() int {
	return max(l.OutputWidth-6, 1)
}

// VisibleHeight returns the lines that fit inside a pane of the given
// height.
func VisibleHeight(height int) int {
	return max(height-2, 1)
}
