package scenes

import (
	"sync"

	"github.com/automoto/molasses-mike/components"
	cfg "github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/logging"
	"github.com/automoto/molasses-mike/systems"
	"github.com/automoto/molasses-mike/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene is the single playable screen. The Default layer is drawn
// into an offscreen canvas and snapshotted as the collision buffer of the
// next update. The Figure layer is drawn on the canvas after that, and the
// Overlay layer goes straight to the screen.
type PlatformerScene struct {
	ecs    *ecs.ECS
	once   sync.Once
	canvas *ebiten.Image
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

// Update runs one frame. It returns ebiten.Termination once quit is pressed.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.QuitRequested(ps.ecs) {
		logging.Logger.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}

	b := screen.Bounds()
	if ps.canvas == nil || ps.canvas.Bounds().Size() != b.Size() {
		ps.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}

	ps.ecs.DrawLayer(cfg.Default, ps.canvas)
	systems.SnapshotFrame(ps.ecs, ps.canvas)
	ps.ecs.DrawLayer(cfg.Figure, ps.canvas)

	screen.DrawImage(ps.canvas, nil)
	ps.ecs.DrawLayer(cfg.Overlay, screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCharacter) // Must run after UpdateInput
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateDebug)

	// Everything on Default is part of the collision buffer
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Figure, systems.DrawCharacter)

	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreatePlatforms(ps.ecs)
	character := factory.CreateCharacter(ps.ecs)
	factory.CreateFrameBuffer(ps.ecs, cfg.C.Width, cfg.C.Height)
	factory.CreateInput(ps.ecs)
	factory.CreateDebug(ps.ecs)

	s := components.Character.Get(character).State
	logging.Logger.Info("scene ready", "spawn_x", s.X, "spawn_y", s.Y, "debug", cfg.Debug.Overlay)
}
