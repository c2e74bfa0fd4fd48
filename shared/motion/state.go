package motion

import "github.com/automoto/molasses-mike/shared/tuning"

// State is the mutable state of the character between frames.
type State struct {
	X, Y      float64
	VelocityY float64
	Width     float64
	Height    float64

	WalkingLeft  bool
	WalkingRight bool
	OnGround     bool

	JumpForce float64 // decaying upward impulse
	Jumping   bool

	Time int // walk cycle frame counter
}

// Intent is the per-frame input the controller reads.
type Intent struct {
	Left, Right bool
	Action      bool // jump, or roll while walking on the ground
	Reset       bool
}

// Config holds the controller constants.
type Config struct {
	Gravity          float64
	JumpImpulse      float64
	JumpDecay        float64
	JumpEndThreshold float64
	WalkSpeed        float64
	GroundLevel      float64
	SpawnX, SpawnY   float64
	Width, Height    float64

	// ScreenWidth bounds horizontal movement when ClampToScreen is set.
	ScreenWidth   float64
	ClampToScreen bool
}

// DefaultConfig returns the stock controller constants.
func DefaultConfig() Config {
	return Config{
		Gravity:          tuning.Gravity,
		JumpImpulse:      tuning.JumpImpulse,
		JumpDecay:        tuning.JumpDecay,
		JumpEndThreshold: tuning.JumpEndThreshold,
		WalkSpeed:        tuning.WalkSpeed,
		GroundLevel:      tuning.GroundLevel,
		SpawnX:           tuning.SpawnX,
		SpawnY:           tuning.SpawnY,
		Width:            tuning.CharacterWidth,
		Height:           tuning.CharacterHeight,
		ScreenWidth:      tuning.ScreenWidth,
		ClampToScreen:    true,
	}
}

// Spawn returns a character standing at the spawn point, not yet grounded.
func (c Config) Spawn() State {
	return State{
		X:      c.SpawnX,
		Y:      c.SpawnY,
		Width:  c.Width,
		Height: c.Height,
	}
}

// Walking reports whether either walk flag is set.
func (s *State) Walking() bool {
	return s.WalkingLeft || s.WalkingRight
}

// reset puts the character back at spawn without touching the walk cycle.
func (s *State) reset(c Config) {
	s.X, s.Y = c.SpawnX, c.SpawnY
	s.VelocityY = 0
	s.OnGround = false
	s.Jumping = false
	s.JumpForce = 0
}
