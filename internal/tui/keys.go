package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	quit          key.Binding
	connect       key.Binding
	disconnect    key.Binding
	pauseBot      key.Binding
	refresh       key.Binding
	copyQR        key.Binding
	chats         key.Binding
	notifications key.Binding
	history       key.Binding
	filter        key.Binding
	dismiss       key.Binding
	dismissAll    key.Binding
	retry         key.Binding
	buildInfo     key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	connect:       key.NewBinding(key.WithKeys("c")),
	disconnect:    key.NewBinding(key.WithKeys("d")),
	pauseBot:      key.NewBinding(key.WithKeys("p")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	copyQR:        key.NewBinding(key.WithKeys("y")),
	chats:         key.NewBinding(key.WithKeys("m")),
	notifications: key.NewBinding(key.WithKeys("n")),
	history:       key.NewBinding(key.WithKeys("h")),
	filter:        key.NewBinding(key.WithKeys("/")),
	dismiss:       key.NewBinding(key.WithKeys("x")),
	dismissAll:    key.NewBinding(key.WithKeys("X")),
	retry:         key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo:     key.NewBinding(key.WithKeys("v")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n", "esc")),
}
