package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dodge/internal/audio"
	"dodge/internal/engine"
	"dodge/internal/platform/desktop"
)

var (
	flagSurfaceID string
	flagWidth     int
	flagHeight    int
	flagRefresh   int
	flagMute      bool
	flagVolume    float64
)

func init() {
	rootCmd.Flags().StringVar(&flagSurfaceID, "surface-id", engine.DefaultSurfaceID, "Identifier of the game surface")
	rootCmd.Flags().IntVar(&flagWidth, "width", 480, "Window width")
	rootCmd.Flags().IntVar(&flagHeight, "height", 800, "Window height")
	rootCmd.Flags().IntVar(&flagRefresh, "refresh", 0, "Frame rate in Hz (0 = monitor refresh rate)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return desktop.Run(ctx, desktop.Options{
		Config:    cfg,
		Seed:      flagSeed,
		SurfaceID: flagSurfaceID,
		Width:     flagWidth,
		Height:    flagHeight,
		RefreshHz: flagRefresh,
		Mute:      flagMute,
		Volume:    flagVolume,
		Logger:    logger,
	})
}
