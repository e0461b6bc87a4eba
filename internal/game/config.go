package game

import (
	"errors"
	"fmt"
)

// MaxPoolCapacity bounds the obstacle pool so the linear free-slot scan stays trivial.
const MaxPoolCapacity = 32

// Reference tuning. The player lives near the bottom of NDC space,
// obstacles drop in from above the top edge.
const (
	PlayerStartX = 0.0
	PlayerStartY = -0.8
	PlayerSize   = 0.15
	PlayerSpeed  = 0.04

	ObstacleCapacity     = 25
	ObstacleSize         = 0.12
	ObstacleSpawnY       = 1.2
	ObstacleMinX         = -0.75
	ObstacleMaxX         = 0.75
	ObstacleExitY        = -1.5
	ObstacleBaseSpeed    = 0.025
	ObstacleSpeedPer1000 = 0.008

	SpawnInterval     = 25
	RandomSpawnEvery  = 10
	RandomSpawnChance = 30 // out of a roll in [0,100]

	ClearReward = 10
)

var ErrInvalidConfig = errors.New("invalid game config")

type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

type ObstacleConfig struct {
	Capacity     int     `yaml:"capacity"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnY       float64 `yaml:"spawn_y"`
	MinX         float64 `yaml:"min_x"`
	MaxX         float64 `yaml:"max_x"`
	ExitY        float64 `yaml:"exit_y"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedPer1000 float64 `yaml:"speed_per_1000"`
}

type SpawnConfig struct {
	Interval     int `yaml:"interval"`
	RandomEvery  int `yaml:"random_every"`
	RandomChance int `yaml:"random_chance"`
}

type ScoringConfig struct {
	Reward int `yaml:"reward"`
}

// Config holds every tunable of the simulation.
type Config struct {
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			StartX: PlayerStartX,
			StartY: PlayerStartY,
			Width:  PlayerSize,
			Height: PlayerSize,
			Speed:  PlayerSpeed,
		},
		Obstacles: ObstacleConfig{
			Capacity:     ObstacleCapacity,
			Width:        ObstacleSize,
			Height:       ObstacleSize,
			SpawnY:       ObstacleSpawnY,
			MinX:         ObstacleMinX,
			MaxX:         ObstacleMaxX,
			ExitY:        ObstacleExitY,
			BaseSpeed:    ObstacleBaseSpeed,
			SpeedPer1000: ObstacleSpeedPer1000,
		},
		Spawn: SpawnConfig{
			Interval:     SpawnInterval,
			RandomEvery:  RandomSpawnEvery,
			RandomChance: RandomSpawnChance,
		},
		Scoring: ScoringConfig{
			Reward: ClearReward,
		},
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalidConfig)
	case c.Obstacles.Capacity < 1 || c.Obstacles.Capacity > MaxPoolCapacity:
		return fmt.Errorf("%w: obstacle capacity %d outside [1,%d]", ErrInvalidConfig, c.Obstacles.Capacity, MaxPoolCapacity)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size must be positive", ErrInvalidConfig)
	case c.Obstacles.MinX >= c.Obstacles.MaxX:
		return fmt.Errorf("%w: obstacle min_x %.3f must be below max_x %.3f", ErrInvalidConfig, c.Obstacles.MinX, c.Obstacles.MaxX)
	case c.Obstacles.BaseSpeed <= 0 || c.Obstacles.SpeedPer1000 < 0:
		return fmt.Errorf("%w: obstacle speeds must be positive", ErrInvalidConfig)
	case c.Obstacles.ExitY >= c.Obstacles.SpawnY:
		return fmt.Errorf("%w: exit_y must be below spawn_y", ErrInvalidConfig)
	case c.Spawn.Interval <= 0 || c.Spawn.RandomEvery <= 0:
		return fmt.Errorf("%w: spawn cadence must be positive", ErrInvalidConfig)
	case c.Spawn.RandomChance < 0 || c.Spawn.RandomChance > 101:
		return fmt.Errorf("%w: random_chance %d outside [0,101]", ErrInvalidConfig, c.Spawn.RandomChance)
	case c.Scoring.Reward < 0:
		return fmt.Errorf("%w: reward must not be negative", ErrInvalidConfig)
	}
	return nil
}
