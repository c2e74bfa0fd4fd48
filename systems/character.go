package systems

import (
	"image"

	"github.com/automoto/molasses-mike/components"
	cfg "github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/logging"
	"github.com/automoto/molasses-mike/shared/motion"
	"github.com/automoto/molasses-mike/shared/roll"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var controller = motion.NewController(cfg.MotionConfig())

// UpdateCharacter steps every character against the previous frame.
// Must run AFTER UpdateInput and BEFORE UpdateObjects.
func UpdateCharacter(ecs *ecs.ECS) {
	intent := IntentFrom(getOrCreateInput(ecs))
	buf := previousFrame(ecs)

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		r := &components.Roll.Get(e).State

		character.Last = controller.Step(&character.State, r, intent, buf)
		logStep(&character.State, r, character.Last)
	})
}

// previousFrame returns the last snapshot, or nil before the first one.
func previousFrame(ecs *ecs.ECS) image.Image {
	entry, ok := components.FrameBuffer.First(ecs.World)
	if !ok {
		return nil
	}
	fb := components.FrameBuffer.Get(entry)
	if !fb.Ready || fb.Image == nil {
		return nil
	}
	return fb.Image
}

func logStep(s *motion.State, r *roll.State, res motion.Result) {
	l := logging.Logger
	switch {
	case res.Reset:
		l.Debug("reset to spawn", "x", s.X, "y", s.Y)
	case res.RollStarted:
		l.Debug("roll started", "direction", r.Direction, "x", s.X)
	case res.RollFinished:
		l.Debug("roll finished", "x", s.X, "cooldown", r.CooldownTimer)
	case res.Jumped:
		l.Debug("jump", "x", s.X, "y", s.Y)
	}
	if res.Landed {
		l.Debug("landed", "x", s.X, "y", s.Y)
	}
	if res.Ceiling {
		l.Debug("hit ceiling", "x", s.X, "y", s.Y)
	}
}
