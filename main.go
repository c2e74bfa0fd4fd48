// molasses-mike is a stick-figure platformer whose collisions are read from
// the pixels of the previous frame.
//
// Usage:
//
//	molasses-mike                     - Play in a window
//	molasses-mike snapshot --out f.png - Run headless and save the last frame
//
// Global flags:
//
//	--log-level <level> - debug, info, warn or error (default: info)
//	--debug             - Start with the collision overlay on
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/logging"
	"github.com/automoto/molasses-mike/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLogLevel string
	flagDebug    bool
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{scene: scenes.NewPlatformerScene()}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "molasses-mike",
	Short: "Molasses Mike - a pixel-collision stick-figure platformer",
	Long: `Walk with A/D or the arrow keys, jump with Space and roll by pressing
Space while walking on the ground. R resets to the spawn point, F3 toggles
the collision overlay and Escape quits.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the collision overlay on")

	rootCmd.AddCommand(snapshotCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Setup(flagLogLevel); err != nil {
		return err
	}
	config.Debug.Overlay = config.Debug.Overlay || flagDebug
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	logging.Logger.Info("starting", "width", config.C.Width, "height", config.C.Height, "tps", config.C.TPS)

	err := ebiten.RunGame(NewGame())
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
