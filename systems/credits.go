package systems

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCredits scrolls the roll and starts the fade out once the last
// line has left the screen or the player skips with confirm.
func UpdateCredits(ecs *ecs.ECS) {
	credits := getOrCreateCredits(ecs)
	if credits.Leaving {
		return
	}
	credits.Offset += cfg.Credits.ScrollSpeed

	skip := GetAction(getOrCreateInput(ecs), cfg.ActionConfirm).JustPressed ||
		GetAction(getOrCreateInput(ecs), cfg.ActionMenuBack).JustPressed
	if skip || credits.Offset >= creditsLength(cfg.C.Height) {
		credits.Leaving = true
		StartFade(ecs, cfg.Credits.FadeTicks)
	}
}

// CreditsFinished reports whether the roll has faded out.
func CreditsFinished(ecs *ecs.ECS) bool {
	return getOrCreateCredits(ecs).Leaving && FadeDone(ecs)
}

// creditsLength is the scroll distance after which every line is above the
// top edge of a screen of the given height.
func creditsLength(screenHeight int) float64 {
	return float64(screenHeight) + cfg.Credits.StartOffset + float64(len(cfg.Credits.Lines))*cfg.Credits.LineHeight
}

func DrawCredits(ecs *ecs.ECS, screen *ebiten.Image) {
	credits := getOrCreateCredits(ecs)
	screen.Fill(cfg.Black)

	top := float64(screen.Bounds().Dy()) + cfg.Credits.StartOffset - credits.Offset
	for i, line := range cfg.Credits.Lines {
		if line == "" {
			continue
		}
		y := top + float64(i)*cfg.Credits.LineHeight
		if y < -cfg.Credits.LineHeight || y > float64(screen.Bounds().Dy())+cfg.Credits.LineHeight {
			continue
		}
		face := fonts.Body
		if i == 0 {
			face = fonts.Bold
		}
		drawCentered(screen, line, face, int(y), cfg.Credits.TextColor)
	}
}

func getOrCreateCredits(ecs *ecs.ECS) *components.CreditsData {
	entry, ok := components.Credits.First(ecs.World)
	if !ok {
		entry = archetypes.Credits.Spawn(ecs)
	}
	return components.Credits.Get(entry)
}
