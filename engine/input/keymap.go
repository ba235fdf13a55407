package input

import "github.com/Carmen-Shannon/oxy-room/common"

// Keymap binds virtual key codes to logical actions.
type Keymap map[uint32]Action

// DefaultKeymap is WASD plus arrow keys for walking, Space/Shift for vertical thrust.
func DefaultKeymap() Keymap {
	return Keymap{
		common.KeyW:          ActionForward,
		common.KeyUp:         ActionForward,
		common.KeyS:          ActionBackward,
		common.KeyDown:       ActionBackward,
		common.KeyA:          ActionLeft,
		common.KeyLeft:       ActionLeft,
		common.KeyD:          ActionRight,
		common.KeyRight:      ActionRight,
		common.KeySpace:      ActionUp,
		common.KeyLeftShift:  ActionDown,
		common.KeyRightShift: ActionDown,
	}
}

// Lookup returns the action bound to keyCode, or ActionNone.
func (k Keymap) Lookup(keyCode uint32) Action {
	if a, ok := k[keyCode]; ok {
		return a
	}
	return ActionNone
}
