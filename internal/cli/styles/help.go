package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// PreviewKeyMap defines keybindings for the interactive dock preview.
type PreviewKeyMap struct {
	CycleEdge  key.Binding
	OffsetUp   key.Binding
	OffsetDown key.Binding
	Suspend    key.Binding
	Show       key.Binding
	Hide       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleEdge, k.OffsetUp, k.OffsetDown, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleEdge, k.OffsetUp, k.OffsetDown},
		{k.Show, k.Hide, k.Suspend},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default preview keybindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		CycleEdge: key.NewBinding(
			key.WithKeys("e", "tab"),
			key.WithHelp("e", "next edge"),
		),
		OffsetUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "offset +"),
		),
		OffsetDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "offset -"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle access"),
		),
		Show: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show"),
		),
		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelp creates a themed help model.
func NewHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.Subtle
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = theme.Subtle
	return h
}
