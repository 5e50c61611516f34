package config

import (
	"image/color"

	"github.com/automoto/greenie/progression"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per tick, accelerations in pixels per tick squared.
type PlayerConfig struct {
	// Movement
	Acceleration float64
	Drag         float64
	MaxSpeed     float64
	JumpSpeed    float64

	// Dimensions
	CollisionWidth  int
	CollisionHeight int

	// Footsteps
	StepInterval int // ticks between step sounds while walking

	// Visual
	BodyColor color.RGBA
	EyeColor  color.RGBA
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	CellSize     int // resolv space cell size
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	Zoom            float64
}

// TitleConfig contains title screen configuration
type TitleConfig struct {
	Heading     string
	HeadingY    float64
	PanSpeed    float64 // background pan, pixels per tick
	FadeTicks   int
	SkyColor    color.RGBA
	HillColor   color.RGBA
	HeadingFill color.RGBA
}

// CreditsConfig contains credits scroll configuration
type CreditsConfig struct {
	ScrollSpeed float64 // pixels per tick
	FadeTicks   int
	LineHeight  float64
	StartOffset float64 // first line starts this far below the screen
	Lines       []string
	TextColor   color.RGBA
}

// TransitionConfig controls the fade drawn after a level change is requested
type TransitionConfig struct {
	FadeTicks int
	Color     color.RGBA
}

// NoticeConfig contains notice popup configuration
type NoticeConfig struct {
	DisplayDuration int        // Frames to display a notice
	BoxPadding      float64    // Padding inside notice box
	BoxColor        color.RGBA // Semi-transparent background color
	TextColor       color.RGBA
	TopMargin       float64

	KeyCollected   string
	LockOpened     string
	FinaleRevealed string
	NoKeys         string
}

// HUDConfig contains in-level HUD configuration
type HUDConfig struct {
	Margin      float64
	TextColor   color.RGBA
	PromptColor color.RGBA
	PromptY     float64

	DoorPrompt   string // formatted with the destination title
	LockPrompt   string
	FinalePrompt string
}

// CollectibleConfig contains visuals for doors, keys, locks and the finale
type CollectibleConfig struct {
	KeyColor    color.RGBA
	LockColor   color.RGBA
	FinaleColor color.RGBA
	DoorColor   color.RGBA
	ActiveColor color.RGBA

	BobHeight  float32 // key bob amplitude in pixels
	BobSeconds float32 // one half of the bob cycle
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle bool   // Skip title and go directly to the hub
	Level     string // level to start in when skipping the title
	Spawn     string // spawn tag to start at
	LevelsDir string // load levels from disk and hot reload them
	Overlay   bool   // draw trigger bounds and save state
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Title TitleConfig
var Credits CreditsConfig
var Transition TransitionConfig
var Notice NoticeConfig
var HUD HUDConfig
var Collectible CollectibleConfig
var Debug DebugConfig

// Progression holds the rules the level sessions run with.
var Progression progression.Rules

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	Green        = color.RGBA{R: 97, G: 169, B: 51, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Red          = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	SkyBlue      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Greenie's Jumping Adventure",
		TPS:    60,
	}

	// Tuned in pixels per second, converted to ticks at 60 TPS
	const perTick = 1.0 / 60.0
	Player = PlayerConfig{
		Acceleration: 400 * perTick * perTick,
		Drag:         500 * perTick * perTick,
		MaxSpeed:     4.0,
		JumpSpeed:    600 * perTick,

		CollisionWidth:  14,
		CollisionHeight: 20,

		StepInterval: 16,

		BodyColor: Green,
		EyeColor:  White,
	}

	Physics = PhysicsConfig{
		Gravity:      1500 * perTick * perTick,
		MaxFallSpeed: 12.0,
		CellSize:     16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		Zoom:            2.0,
	}

	Title = TitleConfig{
		Heading:     C.Title,
		HeadingY:    80,
		PanSpeed:    0.8,
		FadeTicks:   24, // 400ms
		SkyColor:    SkyBlue,
		HillColor:   color.RGBA{R: 70, G: 140, B: 60, A: 255},
		HeadingFill: Green,
	}

	Credits = CreditsConfig{
		ScrollSpeed: 50 * perTick,
		FadeTicks:   30, // 500ms
		LineHeight:  22,
		StartOffset: 50,
		Lines: []string{
			"Greenie's Jumping Adventure",
			"",
			"Design & Code",
			"Aryan Sidbatte",
			"",
			"Art Assets",
			"Kenney.nl  (CC0)",
			"",
			"Sound",
			"Aryan Sidbatte",
			"",
			"Thank you for playing!",
		},
		TextColor: White,
	}

	Transition = TransitionConfig{
		FadeTicks: 18,
		Color:     Black,
	}

	Notice = NoticeConfig{
		DisplayDuration: 150,
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       30.0,

		KeyCollected:   "Key collected!",
		LockOpened:     "Lock opened (%d/%d)",
		FinaleRevealed: "The way forward is open",
		NoKeys:         "You need a key",
	}

	HUD = HUDConfig{
		Margin:      10,
		TextColor:   White,
		PromptColor: Yellow,
		PromptY:     320,

		DoorPrompt:   "SPACE: enter %s",
		LockPrompt:   "SPACE: unlock",
		FinalePrompt: "SPACE: finish",
	}

	Collectible = CollectibleConfig{
		KeyColor:    Gold,
		LockColor:   color.RGBA{R: 150, G: 110, B: 70, A: 255},
		FinaleColor: color.RGBA{R: 240, G: 240, B: 255, A: 255},
		DoorColor:   color.RGBA{R: 90, G: 60, B: 40, A: 200},
		ActiveColor: Yellow,

		BobHeight:  3,
		BobSeconds: 0.6,
	}

	Progression = progression.DefaultRules()
}
