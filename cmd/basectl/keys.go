package main

import "github.com/charmbracelet/bubbles/key"

// topKeyMap defines the keyboard shortcuts of the top view
type topKeyMap struct {
	Pause key.Binding
	Flush key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultTopKeyMap() topKeyMap {
	return topKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause workload"),
		),
		Flush: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flush free lists"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy table to clipboard"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k topKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Pause, k.Flush, k.Copy, k.Help, k.Quit}
}
