// Package pose computes stick figure geometry for a character. It has no
// state; every pose is derived from the inputs of a single frame.
//
// Angles are in radians in screen space: 0 points right, π/2 points down.
package pose

import (
	"math"

	"github.com/automoto/molasses-mike/shared/roll"
)

// Figure proportions in pixels at scale 1.
const (
	HeadRadius = 20.0
	ArmLength  = 30.0 // each of upper and lower arm
	LegLength  = 30.0 // each of upper and lower leg
	ArmOffset  = 5.0  // shoulder distance from the body center line
	LegOffset  = 5.0  // knee base distance from the body center line
	LineWidth  = 5.0
)

type Point struct {
	X, Y float64
}

func (p Point) add(angle, length float64) Point {
	return Point{X: p.X + math.Cos(angle)*length, Y: p.Y + math.Sin(angle)*length}
}

type Head struct {
	Center Point
	Radius float64
}

// Body is a rectangle at Min of Width x Height, or a circle at Center of
// Radius when Round is set. Center is valid for both shapes.
type Body struct {
	Min           Point
	Width, Height float64
	Center        Point
	Radius        float64
	Round         bool
}

// Limb is a two segment limb: Root to Joint, then Joint to End. Upper and
// Lower are the segment angles.
type Limb struct {
	Root, Joint, End Point
	Upper, Lower     float64
}

type Pose struct {
	Head     Head
	Body     Body
	LeftArm  Limb
	RightArm Limb
	LeftLeg  Limb
	RightLeg Limb
	Scale    float64
}

// Frame is the character box the pose is laid out around. X, Y is the body
// anchor the game moves.
type Frame struct {
	X, Y          float64
	Width, Height float64
}

// For picks the roll pose while r is rolling and the locomotion pose otherwise.
func For(f Frame, walkingLeft, walkingRight bool, time int, r *roll.State) Pose {
	if r != nil && r.Rolling {
		return Roll(f, r.Phase, r.Progress(), r.Direction)
	}
	return Locomotion(f, walkingLeft, walkingRight, time)
}

// limb builds a limb whose upper segment starts at base and is drawn from root.
func limb(root, base Point, upper, lower, upperLen, lowerLen float64) Limb {
	joint := base.add(upper, upperLen)
	return Limb{
		Root:  root,
		Joint: joint,
		End:   joint.add(lower, lowerLen),
		Upper: upper,
		Lower: lower,
	}
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// half mirrors integer halving of the pixel dimensions.
func half(v float64) float64 {
	return math.Floor(v / 2)
}
