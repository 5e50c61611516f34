package scenes

import (
	"sync"

	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/systems"
	"github.com/automoto/greenie/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the heading over a panning meadow and the main menu.
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	run          *Run
	titleUI      *ui.TitleUI
	next         func() interface{} // scene to open once the fade ends
	once         sync.Once
}

func NewTitleScene(sc SceneChanger, run *Run) *TitleScene {
	return &TitleScene{sceneChanger: sc, run: run}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	if ts.next != nil {
		if systems.FadeDone(ts.ecs) {
			ts.sceneChanger.ChangeScene(ts.next())
		}
		return
	}

	ts.titleUI.Update()
	if ts.next == nil && systems.ActionJustPressed(ts.ecs, cfg.ActionMenuSelect) {
		ts.startGame()
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	if ts.ecs == nil {
		return
	}
	ts.ecs.DrawLayer(cfg.Default, screen)
	ts.titleUI.UI.Draw(screen)
	ts.ecs.DrawLayer(cfg.Overlay, screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.ecs.AddSystem(systems.UpdateAudio)
	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateGlobalToggles)
	ts.ecs.AddSystem(systems.UpdateTitle)
	ts.ecs.AddSystem(systems.UpdateFade)

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
	ts.ecs.AddRenderer(cfg.Overlay, systems.DrawFade)

	ts.titleUI = ui.NewTitleUI(systems.IsMuted(), ts.startGame, ts.showCredits, ts.toggleSound)
	systems.PrimeInput(ts.ecs)
}

func (ts *TitleScene) startGame() {
	ts.leave(func() interface{} {
		return NewPlatformerScene(ts.sceneChanger, ts.run, ts.run.Store.Hub(), "")
	})
}

func (ts *TitleScene) showCredits() {
	ts.leave(func() interface{} {
		return NewCreditsScene(ts.sceneChanger, ts.run)
	})
}

func (ts *TitleScene) leave(next func() interface{}) {
	if ts.next != nil {
		return
	}
	ts.next = next
	systems.PlaySFX(ts.ecs, cfg.SoundMenuSelect)
	systems.StartFade(ts.ecs, cfg.Title.FadeTicks)
}

func (ts *TitleScene) toggleSound() bool {
	muted := systems.ToggleMute()
	_ = systems.SaveSettings(systems.CurrentSettings())
	return muted
}
