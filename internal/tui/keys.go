package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	MoveUp   key.Binding
	MoveDown key.Binding

	ToggleDone   key.Binding
	ToggleActive key.Binding

	Add     key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Archive key.Binding

	Dearchive key.Binding

	Save key.Binding

	NextTab key.Binding
	PrevTab key.Binding

	SwitchField key.Binding
	Confirm     key.Binding
	Back        key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "older / previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "newer / next"),
		),

		MoveUp: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "move task up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "move task down"),
		),

		ToggleDone: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		ToggleActive: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/stop"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit task"),
		),
		Archive: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "archive done"),
		),

		Dearchive: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restore task"),
		),

		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),

		SwitchField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "save and quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit without saving"),
		),
	}
}

func (k keyMap) displayHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.MoveUp, k.MoveDown,
		k.ToggleDone, k.ToggleActive,
		k.Add, k.Edit, k.Delete, k.Archive,
		k.Save, k.NextTab, k.Quit,
	}
}

func (k keyMap) archivedHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right,
		k.Dearchive, k.Save, k.NextTab, k.Quit,
	}
}

func (k keyMap) settingsHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right,
		k.Save, k.NextTab, k.Quit,
	}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.SwitchField, k.Back}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back}
}
