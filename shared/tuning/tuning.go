// Package tuning holds the fixed numeric constants of the game. They are not
// externally configurable; package config copies them into its typed globals.
package tuning

// Screen dimensions in pixels.
const (
	ScreenWidth  = 1400
	ScreenHeight = 600
	TicksPerSec  = 60
)

// Character physics, in pixels per frame.
const (
	Gravity          = 0.8
	JumpImpulse      = -15.0
	JumpDecay        = 0.9
	JumpEndThreshold = 1.0
	WalkSpeed        = 5.0
	GroundLevel      = ScreenHeight - 80
)

// Character body and spawn.
const (
	CharacterWidth  = 7
	CharacterHeight = 50
	SpawnX          = ScreenWidth/2 - 650
	SpawnY          = ScreenHeight - 300
)

// Roll special move.
const (
	RollSpeed    = 8.0
	RollCooldown = 30
)

// RollDurations is the frame count of each roll phase, Leap through Finish.
var RollDurations = [5]int{3, 3, 2, 6, 3}

// Platform is a static axis-aligned rectangle.
type Platform struct {
	X, Y, Width, Height float64
}

// Platforms returns the four static platforms of the session.
func Platforms() []Platform {
	return []Platform{
		{X: 100, Y: ScreenHeight - 50, Width: 50, Height: 50},
		{X: 250, Y: ScreenHeight - 100, Width: 50, Height: 100},
		{X: 400, Y: ScreenHeight - 150, Width: 50, Height: 150},
		{X: 550, Y: ScreenHeight - 200, Width: 50, Height: 200},
	}
}
