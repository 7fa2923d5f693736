package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer the sandbox uses.
const Default ecs.LayerID = 0

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds window and simulation settings
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	// TickRate is the number of simulation ticks per second.
	TickRate int `mapstructure:"tick_rate"`
	// TimeFactor scales every body's velocity for one tick.
	TimeFactor float64 `mapstructure:"time_factor"`
	// SlowMotionFactor replaces TimeFactor while slow motion is held.
	SlowMotionFactor float64 `mapstructure:"slow_motion_factor"`
	// LevelDir is the directory of the embedded level files.
	LevelDir string `mapstructure:"level_dir"`
}

// CollisionConfig configures the collision space
type CollisionConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
	// MaxResolveDepth bounds the recursive re-resolution after a slide or bounce.
	MaxResolveDepth int `mapstructure:"max_resolve_depth"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64 `mapstructure:"acceleration"`
	MaxSpeed     float64 `mapstructure:"max_speed"`
	JumpSpeed    float64 `mapstructure:"jump_speed"`

	// Physics
	Gravity      float64 `mapstructure:"gravity"`
	Friction     float64 `mapstructure:"friction"`
	MaxFallSpeed float64 `mapstructure:"max_fall_speed"`

	// Dimensions
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// Priority lets the player push crates but not platforms.
	Priority int `mapstructure:"priority"`
}

// CrateConfig contains pushable crate values
type CrateConfig struct {
	Size         float64 `mapstructure:"size"`
	Gravity      float64 `mapstructure:"gravity"`
	Friction     float64 `mapstructure:"friction"`
	MaxFallSpeed float64 `mapstructure:"max_fall_speed"`
	Priority     int     `mapstructure:"priority"`
}

// PlatformConfig contains floating platform values
type PlatformConfig struct {
	Priority int `mapstructure:"priority"`
	// DefaultSeconds is the duration of one leg when the level sets none.
	DefaultSeconds float64 `mapstructure:"default_seconds"`
	// DefaultDY is the vertical travel when the level sets neither dx nor dy.
	DefaultDY float64 `mapstructure:"default_dy"`
}

// CameraConfig contains camera behavior settings
type CameraConfig struct {
	FollowSmoothing         float64 `mapstructure:"follow_smoothing"`
	LookAheadDistanceX      float64 `mapstructure:"look_ahead_distance_x"`
	LookAheadSmoothing      float64 `mapstructure:"look_ahead_smoothing"`
	LookAheadSpeedThreshold float64 `mapstructure:"look_ahead_speed_threshold"`
	RespawnShakeIntensity   float64 `mapstructure:"respawn_shake_intensity"`
	RespawnShakeDuration    int     `mapstructure:"respawn_shake_duration"`
}

// DebugConfig contains debug overlay settings (can be overridden by CLI flags)
type DebugConfig struct {
	ShowCells    bool `mapstructure:"show_cells"`
	ShowHitboxes bool `mapstructure:"show_hitboxes"`
	ShowContacts bool `mapstructure:"show_contacts"`
	// Paused starts the simulation paused; single ticks are stepped by hand.
	Paused bool `mapstructure:"paused"`
}

// DebugColors are the colors of the overlay layers
type DebugColors struct {
	Background color.RGBA
	Cell       color.RGBA
	Locator    color.RGBA
	Solid      color.RGBA
	Collision  color.RGBA
	Overlap    color.RGBA
	Contact    color.RGBA
	Text       color.RGBA
}

// Common colors used throughout the sandbox
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	BrightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 180, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

var (
	C         *Config
	Collision CollisionConfig
	Player    PlayerConfig
	Crate     CrateConfig
	Platform  PlatformConfig
	Camera    CameraConfig
	Debug     DebugConfig
	Colors    DebugColors
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:            640,
		Height:           360,
		TickRate:         60,
		TimeFactor:       1.0,
		SlowMotionFactor: 0.25,
		LevelDir:         "levels",
	}

	Collision = CollisionConfig{
		CellWidth:       32,
		CellHeight:      32,
		MaxResolveDepth: 32,
	}

	Player = PlayerConfig{
		Acceleration: 0.75,
		MaxSpeed:     4.0,
		JumpSpeed:    10.0,
		Gravity:      0.75,
		Friction:     0.5,
		MaxFallSpeed: 12.0,
		Width:        14,
		Height:       36,
		Priority:     10,
	}

	Crate = CrateConfig{
		Size:         24,
		Gravity:      0.75,
		Friction:     0.25,
		MaxFallSpeed: 12.0,
		Priority:     5,
	}

	Platform = PlatformConfig{
		Priority:       100,
		DefaultSeconds: 2,
		DefaultDY:      -128,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
		RespawnShakeIntensity:   6.0,
		RespawnShakeDuration:    12,
	}

	Debug = DebugConfig{
		ShowCells:    false,
		ShowHitboxes: true,
		ShowContacts: true,
	}

	Colors = DebugColors{
		Background: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		Cell:       DarkGray,
		Locator:    White,
		Solid:      Orange,
		Collision:  SkyBlue,
		Overlap:    BrightGreen,
		Contact:    LightRed,
		Text:       Yellow,
	}
}

// Validate checks the current globals for values the simulation cannot run with.
func Validate() error {
	switch {
	case Collision.CellWidth <= 0 || Collision.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %vx%v must be positive", ErrInvalidConfig, Collision.CellWidth, Collision.CellHeight)
	case Collision.MaxResolveDepth < 1:
		return fmt.Errorf("%w: max resolve depth %d must be at least 1", ErrInvalidConfig, Collision.MaxResolveDepth)
	case C.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, C.TickRate)
	case C.TimeFactor <= 0 || C.SlowMotionFactor <= 0:
		return fmt.Errorf("%w: time factors must be positive", ErrInvalidConfig)
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("%w: window %dx%d must be positive", ErrInvalidConfig, C.Width, C.Height)
	case Player.Width <= 0 || Player.Height <= 0 || Crate.Size <= 0:
		return fmt.Errorf("%w: body dimensions must be positive", ErrInvalidConfig)
	case Platform.DefaultSeconds <= 0:
		return fmt.Errorf("%w: platform leg duration must be positive", ErrInvalidConfig)
	}
	return nil
}
