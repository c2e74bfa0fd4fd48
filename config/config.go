package config

import (
	"image/color"

	"github.com/automoto/molasses-mike/shared/motion"
	"github.com/automoto/molasses-mike/shared/roll"
	"github.com/automoto/molasses-mike/shared/tuning"
	"github.com/yohamta/donburi/ecs"
)

// Render layers. Default holds the terrain and is all the probe reads;
// Figure is drawn over it after the snapshot, and Overlay goes straight to
// the screen. Neither of those ever collides.
const (
	Default ecs.LayerID = iota
	Figure
	Overlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PlayerConfig contains all character-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed        float64
	JumpImpulse      float64 // initial upward velocity, negative is up
	JumpDecay        float64 // impulse multiplier per frame
	JumpEndThreshold float64 // jump ends below this impulse magnitude

	// Dimensions
	Width  float64
	Height float64

	// Spawn point, also the reset target
	SpawnX float64
	SpawnY float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity       float64
	GroundLevel   float64 // hard floor, independent of pixel collision
	ClampToScreen bool    // keep the character inside the screen horizontally
}

// RollConfig contains the roll special move configuration
type RollConfig struct {
	Speed     float64
	Cooldown  int    // frames after a roll before the next may start
	Durations [5]int // frames per phase, Leap through Finish
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool // draw collision samples, hits and resolv objects
	CrossCheck bool // compare pixel probing against resolv geometry
	HitFade    int  // frames an obstruction hit stays on the overlay
}

// UIConfig contains overlay colors
type UIConfig struct {
	DebugSolidColor  color.RGBA
	DebugPlayerColor color.RGBA
	DebugSampleColor color.RGBA
	DebugHitColor    color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Roll RollConfig
var Debug DebugConfig
var UI UIConfig

// Overlay colors
var (
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey    = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  tuning.ScreenWidth,
		Height: tuning.ScreenHeight,
		Title:  "Molasses Mike",
		TPS:    tuning.TicksPerSec,
	}

	Physics = PhysicsConfig{
		Gravity:       tuning.Gravity,
		GroundLevel:   tuning.GroundLevel,
		ClampToScreen: true,
	}

	Player = PlayerConfig{
		WalkSpeed:        tuning.WalkSpeed,
		JumpImpulse:      tuning.JumpImpulse,
		JumpDecay:        tuning.JumpDecay,
		JumpEndThreshold: tuning.JumpEndThreshold,

		Width:  tuning.CharacterWidth,
		Height: tuning.CharacterHeight,

		SpawnX: tuning.SpawnX,
		SpawnY: tuning.SpawnY,
	}

	Roll = RollConfig{
		Speed:     tuning.RollSpeed,
		Cooldown:  tuning.RollCooldown,
		Durations: tuning.RollDurations,
	}

	UI = UIConfig{
		DebugSolidColor:  Grey,
		DebugPlayerColor: Blue,
		DebugSampleColor: Green,
		DebugHitColor:    Magenta,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:    false,
		CrossCheck: true,
		HitFade:    30,
	}
}

// MotionConfig builds the character controller configuration.
func MotionConfig() motion.Config {
	return motion.Config{
		Gravity:          Physics.Gravity,
		JumpImpulse:      Player.JumpImpulse,
		JumpDecay:        Player.JumpDecay,
		JumpEndThreshold: Player.JumpEndThreshold,
		WalkSpeed:        Player.WalkSpeed,
		GroundLevel:      Physics.GroundLevel,
		SpawnX:           Player.SpawnX,
		SpawnY:           Player.SpawnY,
		Width:            Player.Width,
		Height:           Player.Height,
		ScreenWidth:      float64(C.Width),
		ClampToScreen:    Physics.ClampToScreen,
	}
}

// RollStateConfig builds the roll state machine configuration.
func RollStateConfig() roll.Config {
	return roll.Config{
		Speed:     Roll.Speed,
		Cooldown:  Roll.Cooldown,
		Durations: Roll.Durations,
	}
}
