package pose

import (
	"math"

	"github.com/automoto/molasses-mike/shared/roll"
)

// Rolling phase constants.
const (
	RollScale     = 0.6
	ArmOrbitDeg   = 45.0 // arm lead over the head while rolling
	LegOrbitDeg   = 90.0 // leg lead over the head while rolling
	FinishFrom    = 0.5  // crouched scale at the start of Finish
	FinishArmDeg  = 30.0 // arm spread at the end of Finish
	FinishLegDeg  = 15.0 // leg spread at the end of Finish
	FinishHeadDX  = 6.0
	FinishHeadDY  = 14.0
	hangDownDeg   = 90.0
	foldedKneeDeg = 90.0
)

// shape is a crouched or extended body. Arm angles are degrees below the
// forward horizontal; leg angles are degrees off straight down, positive
// forward and negative back.
type shape struct {
	headDX, headDY float64 // head offset, forward and down
	arm, armSpread float64
	leg, legSpread float64
	scale          float64
	folded         bool // lower segments fold back a right angle
}

var phaseShapes = [...]shape{
	roll.Leap:  {headDX: 12, headDY: -8, arm: 30, leg: -30, legSpread: 15, scale: 1.0},
	roll.Hands: {headDX: 20, headDY: 4, arm: 45, armSpread: 15, leg: -15, legSpread: 15, scale: 0.8},
	roll.Tuck:  {headDX: 6, headDY: 14, arm: 15, leg: 10, scale: RollScale, folded: true},
}

// Roll returns the pose for a roll phase. progress is the elapsed fraction of
// the phase and direction is -1 for left and +1 for right.
func Roll(f Frame, phase roll.Phase, progress float64, direction int) Pose {
	dir := 1.0
	if direction < 0 {
		dir = -1
	}
	progress = math.Max(0, math.Min(1, progress))

	switch phase {
	case roll.Rolling:
		return rolling(f, progress, dir)
	case roll.Finish:
		return shaped(f, dir, finishShape(progress))
	case roll.Leap, roll.Hands, roll.Tuck:
		return shaped(f, dir, phaseShapes[phase])
	}
	return Locomotion(f, false, false, 0)
}

// finishShape rises linearly from a crouch to standing.
func finishShape(progress float64) shape {
	return shape{
		headDX:    lerp(FinishHeadDX, 0, progress),
		headDY:    lerp(FinishHeadDY, 0, progress),
		arm:       hangDownDeg - FinishArmDeg*progress,
		armSpread: 2 * FinishArmDeg * progress,
		leg:       FinishLegDeg * progress,
		legSpread: -2 * FinishLegDeg * progress,
		scale:     lerp(FinishFrom, 1, progress),
	}
}

func shaped(f Frame, dir float64, s shape) Pose {
	halfW := half(f.Width)
	bottom := f.Y + half(f.Height)
	bodyH := f.Height * s.scale
	top := bottom - bodyH

	p := Pose{Scale: s.scale}
	r := HeadRadius * s.scale
	p.Head = Head{
		Center: Point{X: f.X + dir*s.headDX, Y: top - r + s.headDY},
		Radius: r,
	}
	topLeft := Point{X: f.X - halfW, Y: top}
	p.Body = Body{
		Min:    topLeft,
		Width:  f.Width,
		Height: bodyH,
		Center: Point{X: topLeft.X + f.Width/2, Y: top + bodyH/2},
	}

	fold := 0.0
	if s.folded {
		fold = dir * rad(foldedKneeDeg)
	}
	armLen, legLen := ArmLength*s.scale, LegLength*s.scale

	a1 := armAngle(dir, s.arm)
	a2 := armAngle(dir, s.arm+s.armSpread)
	left := Point{X: f.X - ArmOffset*s.scale, Y: top}
	right := Point{X: f.X + ArmOffset*s.scale, Y: top}
	p.LeftArm = limb(left, left, a1, a1+fold, armLen, armLen)
	p.RightArm = limb(right, right, a2, a2+fold, armLen, armLen)

	l1 := legAngle(dir, s.leg)
	l2 := legAngle(dir, s.leg+s.legSpread)
	hip := Point{X: f.X, Y: bottom}
	p.LeftLeg = limb(hip, Point{X: hip.X - LegOffset*s.scale, Y: hip.Y}, l1, l1+fold, legLen, legLen)
	p.RightLeg = limb(hip, Point{X: hip.X + LegOffset*s.scale, Y: hip.Y}, l2, l2+fold, legLen, legLen)
	return p
}

// rolling lays head, arms and legs on a circle of a quarter of the height
// around the character anchor, turning a full revolution over the phase.
func rolling(f Frame, progress, dir float64) Pose {
	center := Point{X: f.X, Y: f.Y}
	radius := f.Height / 4
	theta := dir * 2 * math.Pi * progress

	p := Pose{Scale: RollScale}
	p.Head = Head{Center: center.add(theta, radius), Radius: HeadRadius * RollScale}
	p.Body = Body{
		Center: center,
		Radius: radius * RollScale,
		Round:  true,
		Min:    Point{X: center.X - radius*RollScale, Y: center.Y - radius*RollScale},
		Width:  2 * radius * RollScale,
		Height: 2 * radius * RollScale,
	}

	curl := dir * math.Pi / 2
	tail := radius * RollScale
	arm := theta + dir*rad(ArmOrbitDeg)
	leg := theta + dir*rad(LegOrbitDeg)
	p.LeftArm = limb(center, center, arm, arm+curl, radius, tail)
	p.RightArm = p.LeftArm
	p.LeftLeg = limb(center, center, leg, leg+curl, radius, tail)
	p.RightLeg = p.LeftLeg
	return p
}

// armAngle points an arm forward, deg below the horizontal.
func armAngle(dir, deg float64) float64 {
	if dir < 0 {
		return math.Pi - rad(deg)
	}
	return rad(deg)
}

// legAngle tilts a leg deg off straight down, forward when positive.
func legAngle(dir, deg float64) float64 {
	return rad(hangDownDeg - dir*deg)
}

func lerp(from, to, progress float64) float64 {
	return from + (to-from)*progress
}
