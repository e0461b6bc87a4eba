//go:build !android

package desktop

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"

	"dodge/internal/audio"
	"dodge/internal/engine"
	"dodge/internal/game"
	"dodge/internal/gfx"
	"dodge/internal/gfx/gles"
)

const (
	title       = "dodge"
	pollTimeout = 100 * time.Millisecond
)

// Options configures a desktop run.
type Options struct {
	Config    game.Config
	Seed      uint64
	SurfaceID string
	Width     int
	Height    int
	RefreshHz int // 0 uses the monitor's rate
	Mute      bool
	Volume    float64
	Logger    *log.Logger
}

// Run opens the window and drives the engine until the window closes or ctx
// is cancelled. It must be called from the main goroutine: glfw, the GL
// context and the render event loop all live on the locked OS thread.
func Run(ctx context.Context, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := opts.Logger.WithPrefix("desktop")
	if opts.SurfaceID == "" {
		opts.SurfaceID = engine.DefaultSurfaceID
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := OpenWindow(title, opts.Width, opts.Height, gfx.DefaultConfigAttribs, gfx.DefaultContextAttribs, true)
	if err != nil {
		return err
	}
	defer window.Destroy()

	refresh := opts.RefreshHz
	if refresh <= 0 {
		refresh = RefreshRate(60)
	}
	logger.Info("window open", "surface", opts.SurfaceID, "refresh", refresh)

	var sound *audio.Player
	if !opts.Mute {
		if sound, err = audio.New(opts.Logger.WithPrefix("audio")); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		sound.SetVolume(opts.Volume)
	}

	render := engine.NewEventLoop("render", 16)
	consumer := engine.NewEventLoop("consumer", 16)
	defer render.Close()
	defer consumer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("consumer loop", "error", err)
		}
	}()

	engineLog := opts.Logger.WithPrefix("engine")
	host := engine.NewHost(engine.Options{
		Config:  opts.Config,
		Seed:    opts.Seed,
		Backend: NewBackend(gfx.DefaultConfigAttribs, true),
		GL:      gles.New(),
		VSync: func(name string) (engine.VSync, error) {
			v := engine.NewTickerVSync(render, refresh, engineLog)
			v.SetWake(glfw.PostEmptyEvent)
			return v, nil
		},
		Logger: engineLog,
	}, consumer)

	id := opts.SurfaceID
	host.SetGameOverCallback(id, func(score int) {
		logger.Info("game over", "score", score)
		sound.Play(audio.CueGameOver)
		// Window calls belong to the main thread.
		err := render.Post(func() {
			window.SetTitle(fmt.Sprintf("%s - game over, score %d (R to restart)", title, score))
		})
		if err == nil {
			glfw.PostEmptyEvent()
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch actionFor(key, action) {
		case ActionLeft:
			_ = host.MoveLeft(id)
		case ActionRight:
			_ = host.MoveRight(id)
		case ActionRestart:
			if host.RestartGame(id) == nil {
				sound.Play(audio.CueRestart)
				w.SetTitle(title)
			}
		case ActionQuit:
			w.SetShouldClose(true)
		}
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		_ = host.OnSurfaceChanged(id, w, width, height)
	})

	fbW, fbH := window.GetFramebufferSize()
	if err := host.OnSurfaceCreated(id, window, fbW, fbH); err != nil {
		return fmt.Errorf("surface created: %w", err)
	}

	// Ticks wake the wait through PostEmptyEvent; the timeout only bounds
	// how long a cancelled ctx goes unnoticed.
	for !window.ShouldClose() && ctx.Err() == nil {
		glfw.WaitEventsTimeout(pollTimeout.Seconds())
		render.Drain()
	}

	if err := host.OnSurfaceDestroyed(id, window); err != nil {
		logger.Warn("surface destroyed", "error", err)
	}
	host.Close()
	logger.Info("window closed")
	return nil
}
