package systems

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowNotice replaces the current notice with msg.
func ShowNotice(ecs *ecs.ECS, msg string) {
	state := getOrCreateNotice(ecs)
	state.Text = msg
	state.DisplayTimer = cfg.Notice.DisplayDuration
}

// ResetNotice clears the active notice (call on respawn)
func ResetNotice(ecs *ecs.ECS) {
	state := getOrCreateNotice(ecs)
	state.Text = ""
	state.DisplayTimer = 0
}

func UpdateNotice(ecs *ecs.ECS) {
	state := getOrCreateNotice(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// DrawNotice renders the active notice at the top center of the screen
func DrawNotice(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateNotice(ecs)
	if state.Text == "" {
		return
	}

	face := fonts.Bold.Get()
	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Notice.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Notice.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Notice.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, face, textX, textY, cfg.Notice.TextColor)
}

// getOrCreateNotice returns the singleton Notice component
func getOrCreateNotice(ecs *ecs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		entry = archetypes.Notice.Spawn(ecs)
	}
	return components.Notice.Get(entry)
}
