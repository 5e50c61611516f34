package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/progression"
	"github.com/automoto/greenie/systems"
	"github.com/automoto/greenie/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level session. A finished session hands over
// to the next PlatformerScene or to the credits.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	run          *Run
	level        progression.LevelID
	spawn        progression.SpawnTag
	session      *progression.Session
	once         sync.Once
}

// NewPlatformerScene creates a scene that loads level at spawn. An empty
// spawn tag means the level default.
func NewPlatformerScene(sc SceneChanger, run *Run, level progression.LevelID, spawn progression.SpawnTag) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, run: run, level: level, spawn: spawn}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if ps.run.Store.Poll() {
		log.Printf("Reloading %s at spawn %q", ps.level, ps.spawn)
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.run, ps.level, ps.spawn))
		return
	}

	ps.ecs.Update()

	req, ok := ps.session.Request()
	if !ok || !systems.FadeDone(ps.ecs) {
		return
	}
	switch req.Kind {
	case progression.RequestCredits:
		ps.sceneChanger.ChangeScene(NewCreditsScene(ps.sceneChanger, ps.run))
	default:
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.run, req.Level, req.Spawn))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	store := ps.run.Store
	level, ok := store.Level(ps.level)
	if !ok {
		log.Printf("Warning: unknown level %q, loading %s instead", ps.level, store.Hub())
		ps.level, ps.spawn = store.Hub(), ""
		level, ok = store.Level(ps.level)
		if !ok {
			panic("hub level " + string(ps.level) + " is missing")
		}
	}

	ps.session = progression.NewSession(level.Definition(), ps.spawn, ps.run.Save, cfg.Progression)
	systems.LogLoadReport(ps.session)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateGlobalToggles)
	ecs.AddSystem(systems.UpdateDebug)

	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateProgression)
	ecs.AddSystem(systems.UpdateCollectibles)
	ecs.AddSystem(systems.UpdateNotice)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateFade)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDoors)
	ecs.AddRenderer(cfg.Default, systems.DrawCollectibles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawNotice)
	ecs.AddRenderer(cfg.Overlay, systems.DrawFade)

	ps.ecs = ecs

	factory.CreateLevel(ps.ecs, level, ps.session)
	for _, door := range ps.session.Doors().Doors() {
		factory.CreateDoor(ps.ecs, door, store.Title(door.Destination))
	}
	systems.SyncCollectibles(ps.ecs, ps.session)

	spawn, _ := ps.session.Spawn()
	factory.CreatePlayer(ps.ecs, spawn)
	factory.CreateCamera(ps.ecs)
	systems.SnapCamera(ps.ecs)

	systems.PrimeInput(ps.ecs)
	systems.StartFadeIn(ps.ecs, cfg.Transition.FadeTicks)
}
