package systems

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/automoto/molasses-mike/components"
	cfg "github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/shared/pixelprobe"
	"github.com/automoto/molasses-mike/shared/tuning"
	"github.com/automoto/molasses-mike/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type world struct {
	ecs       *ecs.ECS
	character *donburi.Entry
	frame     *donburi.Entry
	debug     *donburi.Entry
}

func newWorld(t *testing.T) world {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	w := world{
		ecs:       e,
		character: factory.CreateCharacter(e),
		frame:     factory.CreateFrameBuffer(e, cfg.C.Width, cfg.C.Height),
		debug:     factory.CreateDebug(e),
	}
	factory.CreateInput(e)
	return w
}

// paint publishes a white snapshot with the given rectangles in terrain.
func (w world) paint(solid ...image.Rectangle) {
	fb := components.FrameBuffer.Get(w.frame)
	draw.Draw(fb.Image, fb.Image.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for _, r := range solid {
		draw.Draw(fb.Image, r, image.NewUniform(pixelprobe.Obstruction), image.Point{}, draw.Src)
	}
	fb.Frame++
	fb.Ready = true
}

func (w world) step() {
	UpdateCharacter(w.ecs)
	UpdateObjects(w.ecs)
	UpdateDebug(w.ecs)
}

func (w world) state() *components.CharacterData {
	return components.Character.Get(w.character)
}

func TestPreviousFrameIsNilUntilReady(t *testing.T) {
	w := newWorld(t)
	assert.Nil(t, previousFrame(w.ecs))

	w.paint()
	assert.NotNil(t, previousFrame(w.ecs))
}

func TestUpdateCharacterFallsBeforeFirstSnapshot(t *testing.T) {
	w := newWorld(t)
	w.step()

	s := w.state().State
	assert.InDelta(t, tuning.SpawnY+tuning.Gravity, s.Y, 1e-9)
	assert.False(t, s.OnGround)
	assert.Equal(t, 1.0, w.state().Last.Pose.Scale)
}

func TestUpdateCharacterLandsOnSnapshot(t *testing.T) {
	w := newWorld(t)
	w.paint(image.Rect(0, tuning.SpawnY+tuning.CharacterHeight, 200, 400))
	w.step()

	ch := w.state()
	assert.Equal(t, float64(tuning.SpawnY), ch.State.Y)
	assert.True(t, ch.State.OnGround)
	assert.True(t, ch.Last.Landed)
}

func TestUpdateCharacterReadsHeldInput(t *testing.T) {
	w := newWorld(t)
	input := getOrCreateInput(w.ecs)
	input.Current[cfg.ActionMoveRight] = true
	w.step()

	assert.Equal(t, float64(tuning.SpawnX+tuning.WalkSpeed), w.state().State.X)
	assert.True(t, w.state().Last.MovedX)
}

func TestUpdateObjectsMirrorsCharacter(t *testing.T) {
	w := newWorld(t)
	w.step()

	s := w.state().State
	obj := components.Object.Get(w.character)
	assert.Equal(t, s.X, obj.X)
	assert.Equal(t, s.Y, obj.Y)
	assert.Equal(t, s.Width, obj.W)
	assert.Equal(t, s.Height, obj.H)
}

func TestCrossCheckAgreesWithDrawnPlatform(t *testing.T) {
	w := newWorld(t)
	p := tuning.Platform{X: 0, Y: tuning.SpawnY + tuning.CharacterHeight, Width: 200, Height: 50}
	factory.CreatePlatform(w.ecs, p)
	w.paint(image.Rect(0, int(p.Y), 200, int(p.Y+p.Height)))
	w.step()

	d := components.Debug.Get(w.debug)
	assert.False(t, d.Probe.Allowed)
	assert.Equal(t, pixelprobe.HitLanding, d.Probe.Hit)
	assert.True(t, d.GeometryGrounded)
	assert.Zero(t, d.Mismatches)
	assert.NotEmpty(t, d.Samples)
	assert.Equal(t, 1, d.Heat.Len())
}

func TestCrossCheckCountsMismatch(t *testing.T) {
	w := newWorld(t)
	// Terrain in the snapshot with no geometry behind it
	w.paint(image.Rect(0, tuning.SpawnY+tuning.CharacterHeight, 200, 400))
	w.step()

	d := components.Debug.Get(w.debug)
	assert.False(t, d.Probe.Allowed)
	assert.False(t, d.GeometryGrounded)
	assert.Equal(t, 1, d.Mismatches)
}

func TestToggleDebug(t *testing.T) {
	w := newWorld(t)
	d := components.Debug.Get(w.debug)
	require.Equal(t, cfg.Debug.Overlay, d.Enabled)

	input := getOrCreateInput(w.ecs)
	input.Current[cfg.ActionToggleDebug] = true
	UpdateDebug(w.ecs)
	assert.Equal(t, !cfg.Debug.Overlay, d.Enabled)

	// Held, not just pressed
	input.Previous = input.Current
	UpdateDebug(w.ecs)
	assert.Equal(t, !cfg.Debug.Overlay, d.Enabled)
}

func TestIntentFromHeldActions(t *testing.T) {
	var in components.InputData
	in.Current[cfg.ActionMoveLeft] = true
	in.Current[cfg.ActionJump] = true
	in.Previous[cfg.ActionJump] = true

	intent := IntentFrom(&in)
	assert.True(t, intent.Left)
	assert.False(t, intent.Right)
	assert.True(t, intent.Action, "held jump keeps acting")
	assert.False(t, intent.Reset)
}
