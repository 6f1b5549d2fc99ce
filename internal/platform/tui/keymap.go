package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/velikanov/cliffhop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the actions it produces.
// A single key may map to more than one action: up doubles as jump, the
// classic platformer layout. Returns whether the key is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "left", "a", "h":
		return []core.Action{core.ActionLeft}, false
	case "right", "d", "l":
		return []core.Action{core.ActionRight}, false
	case "up", "w", "k":
		return []core.Action{core.ActionUp, core.ActionJump}, false
	case "down", "s", "j":
		return []core.Action{core.ActionDown}, false
	case " ", "z":
		return []core.Action{core.ActionJump}, false
	case "x":
		return []core.Action{core.ActionDash}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
