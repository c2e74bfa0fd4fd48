// Package motion integrates input, gravity, jumping and the roll into the
// character position, testing every move against the previous frame.
package motion

import (
	"image"
	"math"

	"github.com/automoto/molasses-mike/shared/pixelprobe"
	"github.com/automoto/molasses-mike/shared/pose"
	"github.com/automoto/molasses-mike/shared/roll"
)

// Result describes what happened during one Step.
type Result struct {
	Pose pose.Pose

	Reset        bool
	MovedX       bool
	BlockedX     bool
	Jumped       bool
	Landed       bool
	Ceiling      bool
	RollStarted  bool
	RollFinished bool
}

// Controller steps a character one frame at a time.
type Controller struct {
	Config
}

func NewController(cfg Config) *Controller {
	return &Controller{Config: cfg}
}

// Step advances s and r by one frame. buf is the previously rendered frame;
// a nil buffer blocks nothing.
func (c *Controller) Step(s *State, r *roll.State, in Intent, buf image.Image) Result {
	var res Result
	if in.Reset {
		s.reset(c.Config)
		s.WalkingLeft, s.WalkingRight = false, false
		*r = *roll.NewWithConfig(r.Config)
		res.Reset = true
		res.Pose = c.pose(s, r)
		s.Time++
		return res
	}

	wasGrounded := s.OnGround

	s.WalkingLeft, s.WalkingRight = false, false
	dx := 0.0
	if in.Left {
		dx = -c.WalkSpeed
		s.WalkingLeft = true
	} else if in.Right {
		dx = c.WalkSpeed
		s.WalkingRight = true
	}

	dx = c.stepRoll(s, r, in, dx, &res)
	c.moveHorizontal(s, dx, buf, &res)

	if in.Action && s.OnGround && !r.Rolling {
		s.JumpForce = c.JumpImpulse
		s.Jumping = true
		s.OnGround = false
		res.Jumped = true
	}
	if s.Jumping {
		s.VelocityY = s.JumpForce
		s.JumpForce *= c.JumpDecay
		if math.Abs(s.JumpForce) < c.JumpEndThreshold {
			s.Jumping = false
		}
	}
	if !s.Jumping && !s.OnGround {
		s.VelocityY += c.Gravity
	}

	c.moveVertical(s, buf, &res)

	if s.Y >= c.GroundLevel {
		s.Y = c.GroundLevel
		s.VelocityY = 0
		s.OnGround = true
	}
	res.Landed = !wasGrounded && s.OnGround

	res.Pose = c.pose(s, r)
	s.Time++
	return res
}

// stepRoll starts or advances the roll and returns the horizontal delta for
// the frame. A running roll replaces the walk delta.
func (c *Controller) stepRoll(s *State, r *roll.State, in Intent, walk float64, res *Result) float64 {
	if r.Rolling {
		v := r.Update()
		res.RollFinished = !r.Rolling
		return v
	}
	if in.Action && s.Walking() && s.OnGround && !s.Jumping && r.CanStart() {
		res.RollStarted = true
		return r.Start(s.WalkingLeft)
	}
	r.Update()
	return walk
}

func (c *Controller) moveHorizontal(s *State, dx float64, buf image.Image, res *Result) {
	if dx != 0 {
		if pixelprobe.Probe(s.X, s.Y, s.Width, s.Height, dx, 0, buf) {
			s.X += dx
			res.MovedX = true
		} else {
			res.BlockedX = true
		}
	}
	if c.ClampToScreen {
		s.X = math.Max(0, math.Min(s.X, c.ScreenWidth-s.Width))
	}
}

func (c *Controller) moveVertical(s *State, buf image.Image, res *Result) {
	dy := s.VelocityY

	// A resting character stays grounded while the next gravity step would
	// be blocked.
	if dy == 0 && s.OnGround {
		if pixelprobe.Probe(s.X, s.Y, s.Width, s.Height, 0, c.Gravity, buf) {
			s.OnGround = false
		}
		return
	}

	if pixelprobe.Probe(s.X, s.Y, s.Width, s.Height, 0, dy, buf) {
		s.Y += dy
		s.OnGround = false
		return
	}
	switch {
	case dy > 0:
		s.OnGround = true
	case dy < 0:
		res.Ceiling = true
	}
	s.VelocityY = 0
}

func (c *Controller) pose(s *State, r *roll.State) pose.Pose {
	f := pose.Frame{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	return pose.For(f, s.WalkingLeft, s.WalkingRight, s.Time, r)
}
