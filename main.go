package main

import (
	"flag"
	"log"

	"github.com/automoto/hitgrid/assets"
	"github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/scenes"
	"github.com/automoto/hitgrid/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelIndex int, saved *systems.SavedSettings) *Game {
	g := &Game{}
	g.scene = scenes.NewSandboxScene(g, assets.FS, levelIndex, saved)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if s, ok := g.scene.(interface{ Err() error }); ok && s.Err() != nil {
		return s.Err()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Config override file (yaml, json or toml)")
	levelIndex := flag.Int("level", -1, "Level index (default: last played)")
	paused := flag.Bool("paused", false, "Start with the simulation paused")
	cells := flag.Bool("cells", false, "Show occupied grid cells")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *paused {
		config.Debug.Paused = true
	}
	if *cells {
		config.Debug.ShowCells = true
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("hitgrid sandbox")
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	systems.ApplySavedSettingsGlobal(saved)
	if saved != nil && *cells {
		saved.ShowCells = true
	}

	level := *levelIndex
	if level < 0 {
		level = 0
		if saved != nil {
			level = saved.LevelIndex
		}
	}

	if err := ebiten.RunGame(NewGame(level, saved)); err != nil {
		log.Fatal(err)
	}
}
