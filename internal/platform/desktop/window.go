//go:build !android

package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"dodge/internal/gfx"
)

// OpenWindow creates a window whose EGL context satisfies cfg and ctx.
// glfw must already be initialized on the calling (main) thread.
func OpenWindow(title string, width, height int, cfg gfx.ConfigAttribs, ctx gfx.ContextAttribs, srgb bool) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, ctx.ClientVersion)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.RedBits, cfg.RedSize)
	glfw.WindowHint(glfw.GreenBits, cfg.GreenSize)
	glfw.WindowHint(glfw.BlueBits, cfg.BlueSize)
	glfw.WindowHint(glfw.AlphaBits, cfg.AlphaSize)
	glfw.WindowHint(glfw.DepthBits, 0)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if srgb {
		glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return window, nil
}

// RefreshRate reports the primary monitor's refresh rate, or fallback when
// it is unknown.
func RefreshRate(fallback int) int {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return fallback
	}
	mode := mon.GetVideoMode()
	if mode == nil || mode.RefreshRate <= 0 {
		return fallback
	}
	return mode.RefreshRate
}
