package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voskhod/minofall/internal/config"
	"github.com/voskhod/minofall/internal/core"
)

// KeyMap holds the key bindings for both shell stages, built from the
// loaded configuration.
type KeyMap struct {
	TitleUp     key.Binding
	TitleDown   key.Binding
	TitleSubmit key.Binding

	Left     key.Binding
	Right    key.Binding
	HardDrop key.Binding
	SpinCW   key.Binding
	SpinCCW  key.Binding

	Escape key.Binding
	Quit   key.Binding
}

// NewKeyMap builds the bindings from a configuration.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		TitleUp:     key.NewBinding(key.WithKeys(normalizeKeys(cfg.Title.Up)...)),
		TitleDown:   key.NewBinding(key.WithKeys(normalizeKeys(cfg.Title.Down)...)),
		TitleSubmit: key.NewBinding(key.WithKeys(normalizeKeys(cfg.Title.Submit)...)),

		Left:     key.NewBinding(key.WithKeys(normalizeKeys(cfg.Game.Left)...)),
		Right:    key.NewBinding(key.WithKeys(normalizeKeys(cfg.Game.Right)...)),
		HardDrop: key.NewBinding(key.WithKeys(normalizeKeys(cfg.Game.HardDrop)...)),
		SpinCW:   key.NewBinding(key.WithKeys(normalizeKeys(cfg.Game.SpinCW)...)),
		SpinCCW:  key.NewBinding(key.WithKeys(normalizeKeys(cfg.Game.SpinCCW)...)),

		Escape: key.NewBinding(key.WithKeys("esc")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// normalizeKeys maps the config spelling "space" to the literal key
// string bubbletea reports.
func normalizeKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == "space" {
			out[i] = " "
		} else {
			out[i] = k
		}
	}
	return out
}

// MapGameKey updates the input frame from a key message during play.
func (km KeyMap) MapGameKey(msg tea.KeyMsg, frame *core.InputFrame) {
	switch {
	case key.Matches(msg, km.Left):
		frame.Set(core.ActionMoveLeft)
	case key.Matches(msg, km.Right):
		frame.Set(core.ActionMoveRight)
	case key.Matches(msg, km.HardDrop):
		frame.Set(core.ActionHardDrop)
	case key.Matches(msg, km.SpinCW):
		frame.Set(core.ActionRotateCW)
	case key.Matches(msg, km.SpinCCW):
		frame.Set(core.ActionRotateCCW)
	}
}

// MapTitleKey translates a key message to a title screen action.
func (km KeyMap) MapTitleKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.TitleUp):
		return core.ActionUp
	case key.Matches(msg, km.TitleDown):
		return core.ActionDown
	case key.Matches(msg, km.TitleSubmit):
		return core.ActionConfirm
	case key.Matches(msg, km.Escape):
		return core.ActionBack
	}
	return core.ActionNone
}
