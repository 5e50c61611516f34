package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/fonts"
	"github.com/automoto/greenie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

var debugOverlay bool

// SetDebugOverlay sets the initial overlay state, usually from the -debug flag.
func SetDebugOverlay(on bool) {
	debugOverlay = on
}

func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		debugOverlay = !debugOverlay
	}
}

// DrawDebug outlines every resolv object and prints the session and save
// state in the bottom-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugOverlay {
		return
	}
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x, y, w, h := worldRect(camera, screen, obj.X, obj.Y, obj.W, obj.H)
			vector.StrokeRect(screen, x, y, w, h, 1, debugColor(obj), false)
		}
	}

	session := currentSession(ecs)
	if session == nil {
		return
	}
	spawn, source := session.Spawn()
	lines := []string{
		fmt.Sprintf("session %s  %s", session.ID().String()[:8], session.State()),
		fmt.Sprintf("level %s  spawn %q -> %s (%.0f, %.0f)", session.Level(), session.SpawnTag(), source, spawn.X, spawn.Y),
	}
	save := session.Save()
	for _, id := range save.Levels() {
		rec := save.Get(id)
		lines = append(lines, fmt.Sprintf("  %s: key=%t unlocked=%d", id, rec.KeyCollected, rec.LocksUnlocked))
	}
	lines = append(lines, fmt.Sprintf("keys held %d", save.KeysHeld()))
	if issues := session.Report().Issues; len(issues) > 0 {
		lines = append(lines, fmt.Sprintf("%d load issues", len(issues)))
	}

	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - len(lines)*10 - 4
	text.Draw(screen, strings.Join(lines, "\n"), face, 4, y, cfg.White)
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return color.RGBA{R: 100, G: 100, B: 100, A: 255} // Grey
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{R: 0, G: 0, B: 255, A: 255} // Blue
	case obj.HasTags(tags.ResolvDoor):
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	case obj.HasTags(tags.ResolvCollectible):
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	}
	return color.RGBA{R: 0, G: 255, B: 255, A: 255} // Cyan default
}
