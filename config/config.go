package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// DefaultLayer is the render layer every entity and renderer uses.
const DefaultLayer ecs.LayerID = 0

// Camera styles
const (
	CameraSnap      = "snap"
	CameraLookAhead = "lookahead"
)

// Ascent easing curves
const (
	CurveCubic = "cubic"
	CurveQuint = "quint"
)

// PhysicsConfig holds the movement model tunables. Speeds are px/s,
// accelerations px/s^2, windows in seconds.
type PhysicsConfig struct {
	TileSize int `yaml:"tile_size"`

	// Horizontal
	RunSpeed    float64 `yaml:"run_speed"`
	AutoRun     bool    `yaml:"auto_run"`      // Baseline direction is right; left/right modulate speed
	AutoRunSlow float64 `yaml:"auto_run_slow"` // Speed scale while holding left in auto-run
	AutoRunFast float64 `yaml:"auto_run_fast"` // Speed scale while holding right in auto-run

	// Vertical
	Gravity               float64 `yaml:"gravity"`
	JumpImpulse           float64 `yaml:"jump_impulse"` // Negative is upward
	MaxFallSpeed          float64 `yaml:"max_fall_speed"`
	FallMultiplier        float64 `yaml:"fall_multiplier"`         // Gravity scale while falling
	LowJumpMultiplier     float64 `yaml:"low_jump_multiplier"`     // Gravity scale while rising after an early release
	HoldGravityMultiplier float64 `yaml:"hold_gravity_multiplier"` // Gravity scale while rising with jump held

	// Forgiveness windows
	CoyoteTime    float64 `yaml:"coyote_time"`
	JumpBuffer    float64 `yaml:"jump_buffer"`
	JumpHoldLimit float64 `yaml:"jump_hold_limit"`

	// Largest dt a single step may integrate
	MaxStep float64 `yaml:"max_step"`
}

// EasingConfig shapes the ascent of a jump. The multiplier applied to the
// upward displacement is 1 - Gain*curve(u)^Power where u runs from 0 at
// take-off to 1 at the ballistic apex.
type EasingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Gain        float64 `yaml:"gain"`
	DomainScale float64 `yaml:"domain_scale"`
	Power       float64 `yaml:"power"`
	Curve       string  `yaml:"curve"`
}

// PlayerConfig holds the authoritative collider and optional sprite.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Sprite string  `yaml:"sprite"` // Optional PNG path; a placeholder is drawn when empty or unreadable
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Style              string  `yaml:"style"`    // snap | lookahead
	AnchorX            float64 `yaml:"anchor_x"` // Fraction of the screen width where the actor centre sits
	AnchorY            float64 `yaml:"anchor_y"`
	LookAheadDistance  float64 `yaml:"look_ahead_distance"`  // Max horizontal lead in pixels
	LookAheadSmoothing float64 `yaml:"look_ahead_smoothing"` // Time constant in seconds
	LookAheadThreshold float64 `yaml:"look_ahead_threshold"` // Minimum |vx| that moves the lead
	ClampToLevel       bool    `yaml:"clamp_to_level"`
}

// LevelConfig selects and shapes the level.
type LevelConfig struct {
	Dir            string  `yaml:"dir"`  // Directory of .csv/.tmx levels; empty uses the embedded set
	Name           string  `yaml:"name"` // Level to start; empty picks the first
	Loop           bool    `yaml:"loop"` // Wrap columns for an endless run
	KillMargin     float64 `yaml:"kill_margin"`
	RegionDistance float64 `yaml:"region_distance"` // Pixels travelled per background region
}

// DisplayConfig holds window settings
type DisplayConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TPS        int    `yaml:"tps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// ColorConfig is the flat palette for tiles, hazards, the placeholder actor and UI.
type ColorConfig struct {
	Regions           []Color `yaml:"regions"`
	Ground            Color   `yaml:"ground"`
	Platform          Color   `yaml:"platform"`
	Spawn             Color   `yaml:"spawn"`
	Hazard            Color   `yaml:"hazard"`
	HazardSpike       Color   `yaml:"hazard_spike"`
	Player            Color   `yaml:"player"`
	Collider          Color   `yaml:"collider"`
	MenuBackground    Color   `yaml:"menu_background"`
	DeathBackground   Color   `yaml:"death_background"`
	PauseOverlay      Color   `yaml:"pause_overlay"`
	TitleColor        Color   `yaml:"title"`
	TextColorNormal   Color   `yaml:"text"`
	TextColorSelected Color   `yaml:"text_selected"`
}

// StorageConfig locates the run history database
type StorageConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu      bool `yaml:"skip_menu"` // Skip menu and go directly to game
	ShowColliders bool `yaml:"show_colliders"`
}

// Config is the full, immutable game configuration. It is passed by value
// or pointer into every constructor that needs a tunable.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Easing  EasingConfig  `yaml:"easing"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	Level   LevelConfig   `yaml:"level"`
	Display DisplayConfig `yaml:"display"`
	Colors  ColorConfig   `yaml:"colors"`
	Storage StorageConfig `yaml:"storage"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	SkyBlue      = color.RGBA{R: 135, G: 206, B: 250, A: 255}
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			TileSize:    32,
			RunSpeed:    380,
			AutoRun:     false,
			AutoRunSlow: 0.6,
			AutoRunFast: 1.3,

			Gravity:               2200,
			JumpImpulse:           -900,
			MaxFallSpeed:          1400,
			FallMultiplier:        1.6,
			LowJumpMultiplier:     2.0,
			HoldGravityMultiplier: 0.55,

			CoyoteTime:    0.10,
			JumpBuffer:    0.10,
			JumpHoldLimit: 0.20,

			MaxStep: 1.0 / 30.0,
		},
		Easing: EasingConfig{
			Enabled:     false,
			Gain:        0.25,
			DomainScale: 1.0,
			Power:       1.2,
			Curve:       CurveQuint,
		},
		Player: PlayerConfig{
			Width:  50,
			Height: 68,
		},
		Camera: CameraConfig{
			Style:              CameraLookAhead,
			AnchorX:            0.6,
			AnchorY:            0.5,
			LookAheadDistance:  96,
			LookAheadSmoothing: 0.35,
			LookAheadThreshold: 10,
			ClampToLevel:       true,
		},
		Level: LevelConfig{
			Loop:           false,
			KillMargin:     256,
			RegionDistance: 2000,
		},
		Display: DisplayConfig{
			Width:  800,
			Height: 600,
			Title:  "I Am The Fool",
			TPS:    60,
		},
		Colors: ColorConfig{
			Regions: []Color{
				RGB(135, 206, 250),
				RGB(255, 183, 120),
				RGB(120, 90, 160),
				RGB(40, 40, 70),
			},
			Ground:            RGB(139, 69, 19),
			Platform:          RGB(100, 100, 100),
			Spawn:             RGB(255, 215, 0),
			Hazard:            RGB(220, 20, 20),
			HazardSpike:       RGB(140, 10, 10),
			Player:            RGB(70, 130, 180),
			Collider:          RGB(0, 255, 0),
			MenuBackground:    RGB(20, 20, 30),
			DeathBackground:   Color(SkyBlue),
			PauseOverlay:      Color(BlackOverlay),
			TitleColor:        Color(White),
			TextColorNormal:   Color(White),
			TextColorSelected: Color(BrightOrange),
		},
		Storage: StorageConfig{
			Path: "~/.foolrunner/runs.db",
		},
	}
}

// Validate reports every tunable that would make the simulation unstable.
func (c Config) Validate() error {
	var errs []error
	p := c.Physics
	if p.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.tile_size must be positive, got %d", p.TileSize))
	}
	if p.RunSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.run_speed must not be negative, got %v", p.RunSpeed))
	}
	if p.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", p.Gravity))
	}
	if p.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative (upward), got %v", p.JumpImpulse))
	}
	if p.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_fall_speed must be positive, got %v", p.MaxFallSpeed))
	}
	if p.HoldGravityMultiplier <= 0 || p.HoldGravityMultiplier >= 1 {
		errs = append(errs, fmt.Errorf("physics.hold_gravity_multiplier must be in (0,1), got %v", p.HoldGravityMultiplier))
	}
	if p.FallMultiplier < 1 || p.LowJumpMultiplier < 1 {
		errs = append(errs, errors.New("physics.fall_multiplier and physics.low_jump_multiplier must be >= 1"))
	}
	if p.CoyoteTime < 0 || p.JumpBuffer < 0 || p.JumpHoldLimit < 0 {
		errs = append(errs, errors.New("physics windows must not be negative"))
	}
	if p.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_step must be positive, got %v", p.MaxStep))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player collider must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	switch c.Camera.Style {
	case CameraSnap, CameraLookAhead:
	default:
		errs = append(errs, fmt.Errorf("camera.style must be %q or %q, got %q", CameraSnap, CameraLookAhead, c.Camera.Style))
	}
	if c.Easing.Enabled {
		switch c.Easing.Curve {
		case CurveCubic, CurveQuint:
		default:
			errs = append(errs, fmt.Errorf("easing.curve must be %q or %q, got %q", CurveCubic, CurveQuint, c.Easing.Curve))
		}
		if c.Easing.Gain < 0 || c.Easing.Gain >= 1 {
			errs = append(errs, fmt.Errorf("easing.gain must be in [0,1), got %v", c.Easing.Gain))
		}
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	return errors.Join(errs...)
}
