//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a control operation bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
)

// actionFor maps a key event to its action. Held movement keys repeat;
// restart and quit fire on the initial press only.
func actionFor(key glfw.Key, action glfw.Action) Action {
	if action == glfw.Release {
		return ActionNone
	}
	switch key {
	case glfw.KeyLeft, glfw.KeyA:
		return ActionLeft
	case glfw.KeyRight, glfw.KeyD:
		return ActionRight
	}
	if action != glfw.Press {
		return ActionNone
	}
	switch key {
	case glfw.KeyR, glfw.KeySpace, glfw.KeyEnter:
		return ActionRestart
	case glfw.KeyEscape, glfw.KeyQ:
		return ActionQuit
	}
	return ActionNone
}
