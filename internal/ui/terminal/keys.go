package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Older    key.Binding
	Newer    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "run")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "complete")),
		Older:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older")),
		Newer:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "scroll down")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close settings")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("^C", "quit")),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp(drawerOpen bool) []key.Binding {
	bindings := []key.Binding{k.Submit, k.Complete, k.Older, k.PageUp}
	if drawerOpen {
		bindings = append(bindings, k.Close)
	}
	return append(bindings, k.Quit)
}
