package systems

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartFade begins fading the screen to black over ticks frames.
func StartFade(ecs *ecs.ECS, ticks int) {
	startFade(ecs, 0, 1, ticks)
}

// StartFadeIn begins clearing a black screen over ticks frames.
func StartFadeIn(ecs *ecs.ECS, ticks int) {
	startFade(ecs, 1, 0, ticks)
}

func startFade(ecs *ecs.ECS, from, to float32, ticks int) {
	fade := getOrCreateFade(ecs)
	seconds := float32(ticks) / float32(cfg.C.TPS)
	fade.Tween = gween.New(from, to, seconds, ease.Linear)
	fade.Alpha = from
	fade.Done = false
}

func UpdateFade(ecs *ecs.ECS) {
	fade := getOrCreateFade(ecs)
	if fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(1 / float32(cfg.C.TPS))
	fade.Alpha = alpha
	if finished {
		fade.Tween = nil
		fade.Done = true
	}
}

// FadeDone reports whether the last started fade has completed.
func FadeDone(ecs *ecs.ECS) bool {
	return getOrCreateFade(ecs).Done
}

func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	fade := getOrCreateFade(ecs)
	if fade.Alpha <= 0 {
		return
	}
	c := withAlpha(cfg.Transition.Color, fade.Alpha)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

func getOrCreateFade(ecs *ecs.ECS) *components.FadeData {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		entry = archetypes.Fade.Spawn(ecs)
	}
	return components.Fade.Get(entry)
}
