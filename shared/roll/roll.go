package roll

import "github.com/automoto/molasses-mike/shared/tuning"

// Phase is one stage of the roll.
type Phase int

const (
	Leap    Phase = iota // initial leap with extended arms
	Hands                // hands touch the ground
	Tuck                 // head tucked in
	Rolling              // over the shoulder
	Finish               // back to the feet
)

var phaseNames = [...]string{"Leap", "Hands", "Tuck", "Rolling", "Finish"}

func (p Phase) String() string {
	if p < Leap || p > Finish {
		return "Unknown"
	}
	return phaseNames[p]
}

// next returns the phase that follows p. Finish has no successor.
func (p Phase) next() (Phase, bool) {
	if p >= Finish {
		return Finish, false
	}
	return p + 1, true
}

// Config holds the roll constants.
type Config struct {
	Speed     float64 // pixels per frame
	Cooldown  int     // frames after a finished roll
	Durations [5]int  // frames per phase, indexed by Phase
}

// DefaultConfig returns the stock roll: 8 px/frame, 3/3/2/6/3 frames, 30 frame cooldown.
func DefaultConfig() Config {
	return Config{
		Speed:     tuning.RollSpeed,
		Cooldown:  tuning.RollCooldown,
		Durations: tuning.RollDurations,
	}
}

// TotalFrames is the number of Update calls a full roll takes.
func (c Config) TotalFrames() int {
	total := 0
	for _, d := range c.Durations {
		total += d
	}
	return total
}

// State is the roll state machine of a single character.
type State struct {
	Config

	Rolling       bool
	Phase         Phase
	PhaseTimer    int // frames left in Phase
	CooldownTimer int // frames before another roll may start
	Direction     int // -1 left, +1 right
	Distance      float64
}

// New returns an idle roll state with the default config.
func New() *State {
	return NewWithConfig(DefaultConfig())
}

func NewWithConfig(cfg Config) *State {
	return &State{Config: cfg, Direction: 1}
}

// CanStart reports whether Start would begin a roll.
func (s *State) CanStart() bool {
	return !s.Rolling && s.CooldownTimer == 0
}

// Start begins a roll and returns the velocity for this frame. It returns 0 and
// leaves the state untouched while rolling or cooling down.
func (s *State) Start(facingLeft bool) float64 {
	if !s.CanStart() {
		return 0
	}
	s.Rolling = true
	s.Distance = 0
	s.Direction = 1
	if facingLeft {
		s.Direction = -1
	}
	s.Phase = Leap
	s.PhaseTimer = s.Durations[Leap]
	return s.velocity()
}

// Update advances the roll by one frame and returns its horizontal velocity.
// The call that completes Finish returns 0 and leaves CooldownTimer at Cooldown.
func (s *State) Update() float64 {
	v := 0.0
	if s.Rolling {
		s.Distance += s.Speed
		s.PhaseTimer--
		if s.PhaseTimer <= 0 {
			next, ok := s.Phase.next()
			if !ok {
				s.Rolling = false
				s.Distance = 0
				s.CooldownTimer = s.Cooldown
				return 0
			}
			s.Phase = next
			s.PhaseTimer = s.Durations[next]
		}
		v = s.velocity()
	}

	if s.CooldownTimer > 0 {
		s.CooldownTimer--
	}
	return v
}

// Progress is the elapsed fraction of the current phase, in [0, 1].
func (s *State) Progress() float64 {
	d := s.Durations[s.Phase]
	if d <= 0 {
		return 1
	}
	p := 1 - float64(s.PhaseTimer)/float64(d)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (s *State) velocity() float64 {
	return s.Speed * float64(s.Direction)
}
