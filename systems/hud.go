package systems

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/fonts"
	"github.com/automoto/greenie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudIconSize = 16

// DrawHUD renders the keys held, the level title and the prompt for
// whatever the player can interact with right now.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	session := level.Session
	if session == nil {
		return
	}

	margin := float32(cfg.HUD.Margin)
	drawKey(screen, margin, margin, hudIconSize, hudIconSize)
	body := fonts.Body.Get()
	keys := "x " + strconv.Itoa(session.Save().KeysHeld())
	text.Draw(screen, keys, body, int(margin)+hudIconSize+4, int(margin)+12, cfg.HUD.TextColor)

	title := level.Level.Title
	w := text.BoundString(body, title).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, title, body, screen.Bounds().Dx()-int(margin)-w, int(margin)+12, cfg.HUD.TextColor)

	if prompt := interactionPrompt(ecs); prompt != "" {
		drawCentered(screen, prompt, fonts.Bold, int(cfg.HUD.PromptY), cfg.HUD.PromptColor)
	}
}

// interactionPrompt mirrors the order the session resolves a confirm press:
// door first, then the finale, then the active lock.
func interactionPrompt(ecs *ecs.ECS) string {
	session := currentSession(ecs)
	if session == nil || !sessionActive(ecs) {
		return ""
	}
	if active, ok := session.Doors().Active(); ok {
		return fmt.Sprintf(cfg.HUD.DoorPrompt, doorTitle(ecs, active.Index))
	}
	items := session.Collectibles()
	if items.FinaleActive() {
		return cfg.HUD.FinalePrompt
	}
	if _, ok := items.ActiveLock(); ok {
		return cfg.HUD.LockPrompt
	}
	return ""
}

func doorTitle(ecs *ecs.ECS, index int) string {
	title := ""
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		if door.Door.Index == index {
			title = door.Title
		}
	})
	return title
}

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y int, clr color.Color) {
	face := name.Get()
	w := text.BoundString(face, s).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, clr)
}
