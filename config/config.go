package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Variant selects which prototype rules the planet scene runs.
type Variant int

const (
	// VariantTwin has two planets with atmosphere sensors, angular walking and mouse aim.
	VariantTwin Variant = iota
	// VariantHome has a single home planet, velocity-correcting walking and fixed shots.
	VariantHome
)

func (v Variant) String() string {
	switch v {
	case VariantHome:
		return "home"
	default:
		return "twin"
	}
}

// ParseVariant maps a flag or saved value to a Variant. Unknown names fall back to twin.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "twin", "rich", "":
		return VariantTwin, true
	case "home", "simple":
		return VariantHome, true
	}
	return VariantTwin, false
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlanetConfig contains planet and atmosphere geometry
type PlanetConfig struct {
	Radius          float64 `yaml:"radius"`
	AtmosphereScale float64 `yaml:"atmosphere_scale"` // atmosphere radius = Radius * AtmosphereScale
	Friction        float64 `yaml:"friction"`
}

// GravityConfig contains the attraction tunables
type GravityConfig struct {
	Force float64 `yaml:"force"` // constant magnitude, not inverse-square
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions (half extents of the collision box)
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`

	// Movement
	JumpImpulse float64 `yaml:"jump_impulse"`
	WalkSpeed   float64 `yaml:"walk_speed"`   // radians per second around the planet
	GroundSpeed float64 `yaml:"ground_speed"` // tangential speed for velocity-correcting walking
	AirImpulse  float64 `yaml:"air_impulse"`
	AirTangent  float64 `yaml:"air_tangent"` // weight of the tangential part of the air impulse
	SpawnX      float64 `yaml:"spawn_x"`     // fallback spawn when a level has none
	SpawnY      float64 `yaml:"spawn_y"`
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Speed       float64 `yaml:"speed"`
	SpawnOffset float64 `yaml:"spawn_offset"`
	HalfSize    float64 `yaml:"half_size"`
	Mass        float64 `yaml:"mass"`
}

// PhysicsConfig contains engine configuration
type PhysicsConfig struct {
	TickRate        int
	Iterations      int
	CellSize        int     // resolv sensor grid cell size
	SensorExtent    int     // side of the square sensor grid centred on the origin
	ProximityMargin float64 // distance outside an atmosphere reported as within margin
	Profile         bool    // collect step timing counters
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowPlayer    bool    `yaml:"follow_player"`
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
	DefaultScale    float64 `yaml:"default_scale"`    // world units per screen pixel
	MinScale        float64 `yaml:"min_scale"`
	MaxScale        float64 `yaml:"max_scale"`
	ZoomStep        float64 `yaml:"zoom_step"`     // fraction of the scale changed per wheel notch
	ZoomDuration    float32 `yaml:"zoom_duration"` // seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to game
	ShowOverlay bool // Start with the profiling overlay visible
}

// ColorConfig contains the palette used by the renderers
type ColorConfig struct {
	Background color.RGBA
	Planet     color.RGBA
	Atmosphere color.RGBA
	Player     color.RGBA
	Bullet     color.RGBA
	Cursor     color.RGBA
	HUDText    color.RGBA
}

// Global configuration instances
var C *Config
var Planet PlanetConfig
var Gravity GravityConfig
var Player PlayerConfig
var Bullet BulletConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Debug DebugConfig
var Colors ColorConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1600,
		Height: 900,
		Title:  "gravwalk",
	}

	Planet = PlanetConfig{
		Radius:          160,
		AtmosphereScale: 2,
		Friction:        0.7,
	}

	Gravity = GravityConfig{
		Force: 200_000,
	}

	Player = PlayerConfig{
		HalfWidth:   8,
		HalfHeight:  23,
		Mass:        50,
		Friction:    0.7,
		JumpImpulse: 30_000,
		WalkSpeed:   1.2,
		GroundSpeed: 180,
		AirImpulse:  1_000,
		AirTangent:  2,
		SpawnX:      0,
		SpawnY:      250,
	}

	Bullet = BulletConfig{
		Speed:       700,
		SpawnOffset: 30,
		HalfSize:    5,
		Mass:        100,
	}

	Physics = PhysicsConfig{
		TickRate:        60,
		Iterations:      10,
		CellSize:        64,
		SensorExtent:    8192,
		ProximityMargin: 16,
		Profile:         true,
	}

	Camera = CameraConfig{
		FollowPlayer:    true,
		FollowSmoothing: 0.1,
		DefaultScale:    1,
		MinScale:        0.5,
		MaxScale:        3,
		ZoomStep:        0.1,
		ZoomDuration:    0.25,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:    false,
		ShowOverlay: false,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 0xF9, G: 0xF9, B: 0xFF, A: 255},
		Planet:     color.RGBA{R: 102, G: 153, B: 77, A: 255},
		Atmosphere: color.RGBA{R: 20, G: 36, B: 15, A: 51}, // premultiplied
		Player:     color.RGBA{R: 60, G: 60, B: 90, A: 255},
		Bullet:     color.RGBA{R: 200, G: 60, B: 40, A: 255},
		Cursor:     color.RGBA{R: 40, G: 40, B: 40, A: 200},
		HUDText:    color.RGBA{R: 30, G: 30, B: 50, A: 255},
	}
}

// AtmosphereRadius is the reach of attraction around a planet of the given radius.
func AtmosphereRadius(planetRadius float64) float64 {
	return planetRadius * Planet.AtmosphereScale
}
