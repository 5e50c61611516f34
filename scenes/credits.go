package scenes

import (
	"sync"

	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreditsScene rolls the credits and returns to the title.
type CreditsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	run          *Run
	once         sync.Once
}

func NewCreditsScene(sc SceneChanger, run *Run) *CreditsScene {
	return &CreditsScene{sceneChanger: sc, run: run}
}

func (cs *CreditsScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if systems.CreditsFinished(cs.ecs) {
		cs.sceneChanger.ChangeScene(NewTitleScene(cs.sceneChanger, cs.run))
	}
}

func (cs *CreditsScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CreditsScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	cs.ecs.AddSystem(systems.UpdateAudio)
	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.UpdateGlobalToggles)
	cs.ecs.AddSystem(systems.UpdateCredits)
	cs.ecs.AddSystem(systems.UpdateFade)

	cs.ecs.AddRenderer(cfg.Default, systems.DrawCredits)
	cs.ecs.AddRenderer(cfg.Overlay, systems.DrawFade)

	systems.PrimeInput(cs.ecs)
	systems.StartFadeIn(cs.ecs, cfg.Credits.FadeTicks)
}
