package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding of the materials TUI.
type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Remove    key.Binding
	Search    key.Binding
	Compare   key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "add/remove")),
		Remove:    key.NewBinding(key.WithKeys("x", "d", "delete", "backspace"), key.WithHelp("x", "remove")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Compare:   key.NewBinding(key.WithKeys("c", "ctrl+o"), key.WithHelp("c/ctrl+o", "compare")),
		Back:      key.NewBinding(key.WithKeys("esc", "b", "backspace"), key.WithHelp("esc", "back to search")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// homeHelp is the binding list shown under the home view.
type homeHelp struct {
	keys      keyMap
	searching bool
}

func (h homeHelp) ShortHelp() []key.Binding {
	if h.searching {
		return []key.Binding{h.keys.NextFocus, h.keys.Select, h.keys.Compare, h.keys.ForceQuit}
	}
	return []key.Binding{
		h.keys.NextFocus, h.keys.Up, h.keys.Down, h.keys.Select,
		h.keys.Search, h.keys.Compare, h.keys.Quit,
	}
}

func (h homeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// comparisonHelp is the binding list shown under the comparison view.
type comparisonHelp struct {
	keys keyMap
}

func (h comparisonHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Back, h.keys.Quit}
}

func (h comparisonHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
