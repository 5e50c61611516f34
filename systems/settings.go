package systems

import (
	"log"

	cfg "github.com/automoto/greenie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGlobalToggles handles the keys that work in every scene: fullscreen
// and mute. Changes are written through to the settings store.
func UpdateGlobalToggles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	changed := false

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		changed = true
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		if ToggleMute() {
			log.Println("Audio muted")
		}
		changed = true
	}

	if changed {
		_ = SaveSettings(CurrentSettings())
	}
}
