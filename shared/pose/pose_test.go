package pose

import (
	"math"
	"testing"

	"github.com/automoto/molasses-mike/shared/roll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

var frame = Frame{X: 100, Y: 300, Width: 7, Height: 50}

func deg(r float64) float64 {
	return r * 180 / math.Pi
}

func TestLocomotionRestAngles(t *testing.T) {
	for _, time := range []int{0, 17, 45} {
		p := Locomotion(frame, false, false, time)
		assert.InDelta(t, 120, deg(p.LeftArm.Upper), eps)
		assert.InDelta(t, 120, deg(p.LeftArm.Lower), eps)
		assert.InDelta(t, 60, deg(p.RightArm.Upper), eps)
		assert.InDelta(t, 60, deg(p.RightArm.Lower), eps)
		assert.InDelta(t, 90, deg(p.LeftLeg.Upper), eps)
		assert.InDelta(t, 90, deg(p.RightLeg.Upper), eps)
		assert.InDelta(t, 90, deg(p.LeftLeg.Lower), eps)
		assert.Equal(t, 1.0, p.Scale)
	}
}

func TestLocomotionLayout(t *testing.T) {
	p := Locomotion(frame, false, false, 0)
	assert.Equal(t, Point{X: 100, Y: 255}, p.Head.Center)
	assert.Equal(t, HeadRadius, p.Head.Radius)
	assert.Equal(t, Point{X: 97, Y: 275}, p.Body.Min)
	assert.False(t, p.Body.Round)
	assert.Equal(t, Point{X: 95, Y: 275}, p.LeftArm.Root)
	assert.Equal(t, Point{X: 105, Y: 275}, p.RightArm.Root)
	assert.Equal(t, Point{X: 100, Y: 325}, p.LeftLeg.Root)

	// Resting legs hang straight down from the offset knee base.
	assert.InDelta(t, 95, p.LeftLeg.Joint.X, eps)
	assert.InDelta(t, 355, p.LeftLeg.Joint.Y, eps)
	assert.InDelta(t, 385, p.LeftLeg.End.Y, eps)
	assert.InDelta(t, 105, p.RightLeg.End.X, eps)
}

func TestLocomotionGaitAlternates(t *testing.T) {
	// Quarter cycle: sin = 1 on the first leg, -1 on the second.
	p := Locomotion(frame, false, true, 15)
	assert.InDelta(t, 120, deg(p.LeftLeg.Upper), 1e-6)
	assert.InDelta(t, 60, deg(p.RightLeg.Upper), 1e-6)
	// Knee bend is added facing right.
	assert.InDelta(t, 150, deg(p.LeftLeg.Lower), 1e-6)
	assert.InDelta(t, 90, deg(p.RightLeg.Lower), 1e-6)
	// Arms swing opposite each other.
	assert.InDelta(t, 90, deg(p.LeftArm.Upper), 1e-6)
	assert.InDelta(t, 150, deg(p.RightArm.Upper), 1e-6)
	assert.InDelta(t, deg(p.LeftArm.Upper)-ElbowDeg, deg(p.LeftArm.Lower), 1e-6)

	left := Locomotion(frame, true, false, 15)
	assert.InDelta(t, 60, deg(left.LeftLeg.Upper), 1e-6)
	// Knee bend is subtracted facing left.
	assert.InDelta(t, 30, deg(left.LeftLeg.Lower), 1e-6)
	assert.InDelta(t, -240, deg(left.LeftArm.Upper), 1e-6)
	assert.InDelta(t, -300, deg(left.RightArm.Upper), 1e-6)
}

func TestLocomotionPeriodic(t *testing.T) {
	a := Locomotion(frame, false, true, 7)
	b := Locomotion(frame, false, true, 67)
	assert.InDelta(t, a.LeftLeg.Upper, b.LeftLeg.Upper, 1e-9)
	assert.InDelta(t, a.RightArm.End.X, b.RightArm.End.X, 1e-9)
}

func TestRollingHeadTracesCircle(t *testing.T) {
	radius := frame.Height / 4
	center := Point{X: frame.X, Y: frame.Y}
	for i := 0; i <= 20; i++ {
		progress := float64(i) / 20
		p := Roll(frame, roll.Rolling, progress, 1)
		dx, dy := p.Head.Center.X-center.X, p.Head.Center.Y-center.Y
		assert.InDelta(t, radius, math.Hypot(dx, dy), 1e-9, "progress %v", progress)

		angle := 2 * math.Pi * progress
		assert.InDelta(t, radius*math.Cos(angle), dx, 1e-9, "progress %v", progress)
		assert.InDelta(t, radius*math.Sin(angle), dy, 1e-9, "progress %v", progress)
	}

	// Angle zero at both ends of the phase.
	for _, progress := range []float64{0, 1} {
		p := Roll(frame, roll.Rolling, progress, 1)
		assert.InDelta(t, frame.X+radius, p.Head.Center.X, 1e-9)
		assert.InDelta(t, frame.Y, p.Head.Center.Y, 1e-9)
	}
}

func TestRollingBodyIsRound(t *testing.T) {
	p := Roll(frame, roll.Rolling, 0.5, -1)
	assert.True(t, p.Body.Round)
	assert.Equal(t, RollScale, p.Scale)

	for _, ph := range []roll.Phase{roll.Leap, roll.Hands, roll.Tuck, roll.Finish} {
		assert.False(t, Roll(frame, ph, 0.5, 1).Body.Round, ph.String())
	}
}

func TestRollingLimbOffsets(t *testing.T) {
	p := Roll(frame, roll.Rolling, 0.25, 1)
	head := math.Pi / 2
	assert.InDelta(t, head+math.Pi/4, p.LeftArm.Upper, 1e-9)
	assert.InDelta(t, head+math.Pi/2, p.LeftLeg.Upper, 1e-9)

	mirrored := Roll(frame, roll.Rolling, 0.25, -1)
	assert.InDelta(t, -head-math.Pi/4, mirrored.LeftArm.Upper, 1e-9)
}

func TestRollPhaseScales(t *testing.T) {
	tests := []struct {
		phase    roll.Phase
		progress float64
		scale    float64
	}{
		{roll.Leap, 0.5, 1.0},
		{roll.Hands, 0.5, 0.8},
		{roll.Tuck, 0.5, 0.6},
		{roll.Rolling, 0.5, 0.6},
		{roll.Finish, 0, 0.5},
		{roll.Finish, 0.5, 0.75},
		{roll.Finish, 1, 1.0},
	}
	for _, tt := range tests {
		p := Roll(frame, tt.phase, tt.progress, 1)
		assert.InDelta(t, tt.scale, p.Scale, 1e-6, "%v at %v", tt.phase, tt.progress)
		assert.InDelta(t, HeadRadius*tt.scale, p.Head.Radius, 1e-5)
	}
}

func TestFinishInterpolatesInFullPrecision(t *testing.T) {
	progress := 1.0 / 3
	p := Roll(frame, roll.Finish, progress, 1)
	assert.InDelta(t, FinishFrom+(1-FinishFrom)*progress, p.Scale, 1e-12)
}

func TestRollPhasesIgnoreProgressUntilFinish(t *testing.T) {
	for _, ph := range []roll.Phase{roll.Leap, roll.Hands, roll.Tuck} {
		assert.Equal(t, Roll(frame, ph, 0, 1), Roll(frame, ph, 0.9, 1), ph.String())
	}
	assert.NotEqual(t, Roll(frame, roll.Finish, 0, 1), Roll(frame, roll.Finish, 0.9, 1))
}

func TestRollMirrorsWithDirection(t *testing.T) {
	right := Roll(frame, roll.Leap, 0, 1)
	left := Roll(frame, roll.Leap, 0, -1)

	assert.Greater(t, right.Head.Center.X, frame.X, "head leads forward")
	assert.Less(t, left.Head.Center.X, frame.X)
	assert.Less(t, right.Head.Center.Y, Locomotion(frame, false, false, 0).Head.Center.Y+HeadRadius)

	// Arms reach forward at 30 degrees below the horizontal.
	assert.InDelta(t, 30, deg(right.LeftArm.Upper), 1e-9)
	assert.InDelta(t, 150, deg(left.LeftArm.Upper), 1e-9)
	assert.Greater(t, right.LeftArm.End.X, right.LeftArm.Root.X)
	assert.Less(t, left.LeftArm.End.X, left.LeftArm.Root.X)

	// Legs trail behind the body.
	assert.Less(t, right.LeftLeg.End.X, right.LeftLeg.Root.X)
	assert.Greater(t, left.LeftLeg.End.X, left.LeftLeg.Root.X)
}

func TestFinishEndsStanding(t *testing.T) {
	end := Roll(frame, roll.Finish, 1, 1)
	stand := Locomotion(frame, false, false, 0)
	assert.InDelta(t, stand.Head.Center.X, end.Head.Center.X, 1e-5)
	assert.InDelta(t, stand.Head.Center.Y, end.Head.Center.Y, 1e-5)
	assert.InDelta(t, stand.Body.Height, end.Body.Height, 1e-5)

	start := Roll(frame, roll.Finish, 0, 1)
	assert.Greater(t, start.Head.Center.Y, end.Head.Center.Y, "crouched head is lower")
	assert.InDelta(t, start.LeftLeg.Root.Y, end.LeftLeg.Root.Y, eps, "feet stay planted")
}

func TestForSelectsPose(t *testing.T) {
	r := roll.New()
	assert.Equal(t, Locomotion(frame, true, false, 3), For(frame, true, false, 3, r))
	assert.Equal(t, Locomotion(frame, false, false, 0), For(frame, false, false, 0, nil))

	r.Start(false)
	require.True(t, r.Rolling)
	assert.Equal(t, Roll(frame, roll.Leap, 0, 1), For(frame, true, false, 3, r))
}
