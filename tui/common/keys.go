package common

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Refresh   key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding // enter: open idea detail
	Back      key.Binding
	New       key.Binding // n: new idea form
	Upvote    key.Binding
	Link      key.Binding // o: open idea link in browser
	Period    key.Binding // f: cycle filter period
	AllTime   key.Binding
	ThisWeek  key.Binding
	ThisMonth key.Binding
	Sort      key.Binding // s: toggle votes/comments
	Comment   key.Binding // c: focus comment form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Editor    key.Binding // ctrl+e: description in $EDITOR
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new idea"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upvote"),
		),
		Link: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		Period: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		AllTime: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all time"),
		),
		ThisWeek: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "this week"),
		),
		ThisMonth: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "this month"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "post"),
		),
		Editor: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "$EDITOR"),
		),
	}
}

// HelpLine renders bindings as "key: desc • key: desc".
func HelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return StatusBarStyle.Render("  " + strings.Join(parts, " • "))
}

