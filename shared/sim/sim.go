// Package sim runs the character against its own rendered frames without a
// window. Each step probes the terrain drawn by the previous step, then draws
// the next frame.
package sim

import (
	"image"

	"github.com/automoto/molasses-mike/shared/figure"
	"github.com/automoto/molasses-mike/shared/motion"
	"github.com/automoto/molasses-mike/shared/roll"
	"github.com/automoto/molasses-mike/shared/tuning"
)

type Sim struct {
	State motion.State
	Roll  *roll.State
	Last  motion.Result

	controller *motion.Controller
	platforms  []tuning.Platform
	canvas     *figure.Canvas
	terrain    *image.RGBA // canvas copy taken before the figure is drawn
	frames     int
}

// New returns a simulation on a width x height canvas with the character at
// its spawn point.
func New(mc motion.Config, rc roll.Config, platforms []tuning.Platform, width, height int) *Sim {
	return &Sim{
		State:      mc.Spawn(),
		Roll:       roll.NewWithConfig(rc),
		controller: motion.NewController(mc),
		platforms:  platforms,
		canvas:     figure.NewCanvas(width, height),
		terrain:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Default is New with the built-in tuning and platform layout.
func Default() *Sim {
	return New(motion.DefaultConfig(), roll.DefaultConfig(), tuning.Platforms(), tuning.ScreenWidth, tuning.ScreenHeight)
}

// Step advances one frame.
func (s *Sim) Step(in motion.Intent) motion.Result {
	var buf image.Image
	if s.frames > 0 {
		buf = s.terrain
	}
	s.Last = s.controller.Step(&s.State, s.Roll, in, buf)

	figure.DrawTerrain(s.canvas, s.platforms)
	copy(s.terrain.Pix, s.canvas.Image().Pix)
	figure.DrawPose(s.canvas, s.Last.Pose)
	s.frames++
	return s.Last
}

// Run steps n frames, asking in for the intent of each.
func (s *Sim) Run(n int, in func(frame int) motion.Intent) {
	for i := 0; i < n; i++ {
		s.Step(in(s.frames))
	}
}

// Frame is the latest drawn frame. It is blank before the first step.
func (s *Sim) Frame() *image.RGBA {
	return s.canvas.Image()
}

// Terrain is the collision buffer the next step probes.
func (s *Sim) Terrain() *image.RGBA {
	return s.terrain
}

func (s *Sim) Frames() int {
	return s.frames
}
