package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/greenie/assets/levels"
	"github.com/automoto/greenie/config"
	"github.com/automoto/greenie/fonts"
	"github.com/automoto/greenie/progression"
	"github.com/automoto/greenie/scenes"
	"github.com/automoto/greenie/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(run *scenes.Run) *Game {
	fonts.LoadAll()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle || config.Debug.Level != "" {
		level := progression.LevelID(config.Debug.Level)
		if level == "" {
			level = run.Store.Hub()
		}
		g.scene = scenes.NewPlatformerScene(g, run, level, progression.SpawnTag(config.Debug.Spawn))
	} else {
		g.scene = scenes.NewTitleScene(g, run)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipTitle, "skip-title", false, "start in the hub instead of the title screen")
	flag.StringVar(&config.Debug.Level, "level", "", "start in this level")
	flag.StringVar(&config.Debug.Spawn, "spawn", "", "spawn tag to start at")
	flag.StringVar(&config.Debug.LevelsDir, "levels-dir", "", "load levels from this directory and reload them on change")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "show the debug overlay (toggle with F1)")
	flag.Parse()

	systems.SetDebugOverlay(config.Debug.Overlay)

	store := levels.NewEmbeddedStore()
	if config.Debug.LevelsDir != "" {
		disk, err := levels.NewDiskStore(config.Debug.LevelsDir)
		if err != nil {
			log.Fatalf("Failed to load levels from %s: %v", config.Debug.LevelsDir, err)
		}
		store = disk
	}
	defer store.Close()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame(scenes.NewRun(store))); err != nil {
		log.Fatal(err)
	}
}
