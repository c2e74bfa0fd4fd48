package pose

import "math"

// Walk cycle constants.
const (
	CyclePeriod = 60.0 // frames per full stride
	SwingDeg    = 30.0 // arm and leg swing amplitude
	KneeBendDeg = 30.0 // knee bend at full swing
	ElbowDeg    = 120.0
	WalkArmDeg  = 120.0 // arm base angle walking right
	WalkLeftDeg = -270.0

	LeftArmRestDeg  = 120.0
	RightArmRestDeg = 60.0
	LegRestDeg      = 90.0
)

// Locomotion returns the idle or walking pose. Limbs swing on a sine wave of
// CyclePeriod frames while a walk flag is set and rest otherwise.
func Locomotion(f Frame, walkingLeft, walkingRight bool, time int) Pose {
	halfH, halfW := half(f.Height), half(f.Width)

	p := Pose{Scale: 1}
	p.Head = Head{
		Center: Point{X: f.X, Y: f.Y - halfH - HeadRadius},
		Radius: HeadRadius,
	}
	topLeft := Point{X: f.X - halfW, Y: f.Y - halfH}
	p.Body = Body{
		Min:    topLeft,
		Width:  f.Width,
		Height: f.Height,
		Center: Point{X: topLeft.X + f.Width/2, Y: topLeft.Y + f.Height/2},
	}

	cycle := float64(time) * 2 * math.Pi / CyclePeriod
	swing := 0.0
	if walkingLeft || walkingRight {
		swing = math.Sin(cycle)
	}

	var lu, ll, ru, rl float64
	switch {
	case walkingLeft:
		lu = rad(WalkLeftDeg + SwingDeg*swing)
		ll = lu + rad(ElbowDeg)
		ru = rad(WalkLeftDeg - SwingDeg*swing)
		rl = ru + rad(ElbowDeg)
	case walkingRight:
		lu = rad(WalkArmDeg - SwingDeg*swing)
		ll = lu - rad(ElbowDeg)
		ru = rad(WalkArmDeg + SwingDeg*swing)
		rl = ru - rad(ElbowDeg)
	default:
		lu, ll = rad(LeftArmRestDeg), rad(LeftArmRestDeg)
		ru, rl = rad(RightArmRestDeg), rad(RightArmRestDeg)
	}

	shoulderY := f.Y - halfH
	left := Point{X: f.X - ArmOffset, Y: shoulderY}
	right := Point{X: f.X + ArmOffset, Y: shoulderY}
	p.LeftArm = limb(left, left, lu, ll, ArmLength, ArmLength)
	p.RightArm = limb(right, right, ru, rl, ArmLength, ArmLength)

	hip := Point{X: f.X, Y: f.Y + halfH}
	u1, l1, u2, l2 := legAngles(walkingLeft, walkingRight, cycle)
	p.LeftLeg = limb(hip, Point{X: hip.X - LegOffset, Y: hip.Y}, u1, l1, LegLength, LegLength)
	p.RightLeg = limb(hip, Point{X: hip.X + LegOffset, Y: hip.Y}, u2, l2, LegLength, LegLength)
	return p
}

// legAngles runs the two legs half a cycle apart. The knee bends with the
// magnitude of the swing, clockwise facing right and counter-clockwise facing left.
func legAngles(walkingLeft, walkingRight bool, cycle float64) (u1, l1, u2, l2 float64) {
	if !walkingLeft && !walkingRight {
		rest := rad(LegRestDeg)
		return rest, rest, rest, rest
	}

	sign := 1.0
	if walkingLeft {
		sign = -1
	}
	leg := func(phase float64) (float64, float64) {
		upper := rad(LegRestDeg + sign*SwingDeg*phase)
		bend := math.Abs(phase) * rad(KneeBendDeg)
		return upper, upper + sign*bend
	}
	u1, l1 = leg(math.Sin(cycle))
	u2, l2 = leg(math.Sin(cycle + math.Pi))
	return u1, l1, u2, l2
}
