package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/ui/splitpanel"
	"github.com/spaceworld/console/internal/ui/style"
)

const (
	// maxLines bounds the scrollback kept in the output pane.
	maxLines = 5000

	// chromeHeight is the input line plus the footer.
	chromeHeight = 2
)

// Console is the part of a session the full-screen model drives.
type Console interface {
	Submit(line string)
	Complete(line string) dispatchers.Completion
	Navigate(delta int) (string, bool)
	Awaiting() bool
}

// Model is the bubbletea model of the full-screen console.
type Model struct {
	console Console
	shell   *Shell
	buf     *Buffer
	cwd     func() string

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	lines []bufferedLine

	width  int
	height int
}

func NewModel(c Console, shell *Shell, buf *Buffer, cwd func() string) Model {
	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Focus()

	m := Model{
		console:  c,
		shell:    shell,
		buf:      buf,
		cwd:      cwd,
		input:    ti,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
	m.input.Prompt = m.prompt()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForOutput(m.buf))
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case outputMsg:
		m.drain()
		return m, waitForOutput(m.buf)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		if open, _ := m.shell.SettingsView(); open {
			m.shell.CloseSettings()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		line := m.input.Value()
		m.input.Reset()
		m.console.Submit(line)
		m.drain()
		if m.shell.ExitRequested() {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		c := m.console.Complete(m.input.Value())
		if c.Kind == dispatchers.SingleCompletion {
			m.setInput(c.Line)
		}
		m.drain()
		return m, nil

	case key.Matches(msg, m.keys.Older):
		if line, ok := m.console.Navigate(-1); ok {
			m.setInput(line)
		}
		return m, nil

	case key.Matches(msg, m.keys.Newer):
		if line, ok := m.console.Navigate(1); ok {
			m.setInput(line)
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setInput(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

// drain moves buffered output into the pane and scrolls to the newest line.
func (m *Model) drain() {
	lines, cleared := m.buf.Drain()
	if cleared {
		m.lines = nil
	}
	m.lines = append(m.lines, lines...)
	if over := len(m.lines) - maxLines; over > 0 {
		m.lines = m.lines[over:]
	}
	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) layout() (*splitpanel.Layout, int) {
	l := splitpanel.NewLayout(m.width, splitpanel.DefaultConfig(), style.GetColors())
	open, _ := m.shell.SettingsView()
	l.SetDrawerOpen(open)
	return l, max(m.height-chromeHeight, 3)
}

// refresh re-renders the scrollback for the current size, theme and
// drawer state.
func (m *Model) refresh() {
	l, mainHeight := m.layout()
	width := l.OutputContentWidth()

	m.viewport.Width = width
	m.viewport.Height = splitpanel.VisibleHeight(mainHeight)

	rendered := make([]string, len(m.lines))
	for i, line := range m.lines {
		rendered[i] = style.Tone(line.text, line.tone)
	}
	content := strings.Join(rendered, "\n")
	if m.width > 0 {
		content = lipgloss.NewStyle().Width(width).Render(content)
	}
	m.viewport.SetContent(content)

	m.input.Prompt = m.prompt()
	m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-2, 1)
}

func (m Model) prompt() string {
	if m.cwd == nil {
		return dispatchers.Sentinel + "> "
	}
	return m.cwd() + "> "
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	l, mainHeight := m.layout()
	output := splitpanel.Panel{
		Lines:      strings.Split(m.viewport.View(), "\n"),
		ScrollPos:  m.viewport.YOffset,
		TotalItems: m.viewport.TotalLineCount(),
	}

	open, settings := m.shell.SettingsView()
	var drawer *splitpanel.Panel
	if open {
		drawer = &splitpanel.Panel{Title: style.Header("Settings"), Lines: settings}
	}

	main := l.Render(output, drawer, mainHeight)
	input := style.InputLine().Width(m.width).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, main, input, m.renderFooter(open))
}

func (m Model) renderFooter(drawerOpen bool) string {
	status := ""
	if m.console.Awaiting() {
		status = style.Warning("awaiting y/n") + "  "
	}

	footerStyle := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1)

	return footerStyle.Render(status + m.help.ShortHelpView(m.keys.ShortHelp(drawerOpen)))
}
