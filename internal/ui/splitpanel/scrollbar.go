package splitpanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spaceworld/console/internal/ui/style"
)

const (
	thumbChar = "█"
	trackChar = "│"
)

// scrollbar describes the window a pane shows over its lines.
type scrollbar struct {
	height int // visible lines
	total  int // all lines
	offset int // first visible line
}

// thumb returns where the thumb starts and how tall it is. Its size follows
// the visible share of the lines but never fills the track, so the position
// still reads when most lines fit.
func (s scrollbar) thumb() (pos, size int) {
	size = min(max(s.height*s.height/s.total, 1), max(s.height-2, 1))
	travel := max(s.height-size, 0)
	maxOffset := max(s.total-s.height, 1)
	pos = min(max(s.offset*travel/maxOffset, 0), travel)
	return pos, size
}

// render draws one cell per visible line, all blank when every line fits.
// The thumb takes the theme's border color in the focused pane and the muted
// color elsewhere.
func (s scrollbar) render(colors style.ColorConfig, focused bool) []string {
	cells := make([]string, max(s.height, 0))
	if s.total <= s.height {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumbColor := colors.Muted
	if focused {
		thumbColor = colors.Border
	}
	thumbStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(thumbColor))
	trackStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))

	pos, size := s.thumb()
	for i := range cells {
		if i >= pos && i < pos+size {
			cells[i] = thumbStyle.Render(thumbChar)
		} else {
			cells[i] = trackStyle.Render(trackChar)
		}
	}
	return cells
}
