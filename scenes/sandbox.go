package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/hitgrid/components"
	cfg "github.com/automoto/hitgrid/config"
	"github.com/automoto/hitgrid/systems"
	"github.com/automoto/hitgrid/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs one level of the collision sandbox. Resetting or
// switching levels rebuilds the whole world.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       fs.FS
	levelIndex   int
	saved        *systems.SavedSettings
	once         sync.Once
	err          error
}

// NewSandboxScene creates a sandbox scene for the level at levelIndex in
// the levels filesystem
func NewSandboxScene(sc SceneChanger, levels fs.FS, levelIndex int, saved *systems.SavedSettings) *SandboxScene {
	return &SandboxScene{sceneChanger: sc, levels: levels, levelIndex: levelIndex, saved: saved}
}

// Err returns the error that stopped the scene, if any.
func (s *SandboxScene) Err() error { return s.err }

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	if s.ecs == nil {
		return
	}
	s.ecs.Update()

	sandbox := systems.GetOrCreateSandbox(s.ecs)
	if !sandbox.ResetRequested {
		return
	}

	next := s.levelIndex
	if sandbox.NextLevel {
		next++
	}
	// Keep the overlay toggles across the rebuild.
	s.saved = &systems.SavedSettings{
		ShowCells:    sandbox.ShowCells,
		ShowHitboxes: sandbox.ShowHitboxes,
		ShowContacts: sandbox.ShowContacts,
		SpeedIndex:   sandbox.SpeedIndex,
	}
	s.sceneChanger.ChangeScene(NewSandboxScene(s.sceneChanger, s.levels, next, s.saved))
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	systems.AddSimulationSystems(ecs)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	level, err := factory.CreateLevelAtIndex(ecs, s.levels, cfg.C.LevelDir, s.levelIndex)
	if err != nil {
		s.fail(err)
		return
	}
	levelData := components.Level.Get(level)
	s.levelIndex = levelData.LevelIndex

	if _, err := factory.PopulateLevel(ecs, levelData.CurrentLevel); err != nil {
		s.fail(err)
		return
	}

	systems.ApplySavedSettings(ecs, s.saved)
	systems.SaveCurrentSettings(systems.GetOrCreateSandbox(ecs), s.levelIndex)

	s.ecs = ecs
}

func (s *SandboxScene) fail(err error) {
	log.Printf("[sandbox] %v", err)
	s.err = err
}
