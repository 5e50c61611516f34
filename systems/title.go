package systems

import (
	"image/color"
	"math"

	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hillSegment = 8
	hillBase    = 0.72 // fraction of the screen height
)

func UpdateTitle(ecs *ecs.ECS) {
	title := getOrCreateTitle(ecs)
	title.Pan += cfg.Title.PanSpeed
}

// DrawTitle renders the panning meadow behind the menu and the heading.
func DrawTitle(ecs *ecs.ECS, screen *ebiten.Image) {
	title := getOrCreateTitle(ecs)
	screen.Fill(cfg.Title.SkyColor)

	b := screen.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())
	far := lighten(cfg.Title.HillColor)
	drawHills(screen, width, height, title.Pan*0.5, 0.08, 18, far)
	drawHills(screen, width, height, title.Pan, 0.05, 28, cfg.Title.HillColor)

	drawCentered(screen, cfg.Title.Heading, fonts.Title, int(cfg.Title.HeadingY)+2, cfg.Black)
	drawCentered(screen, cfg.Title.Heading, fonts.Title, int(cfg.Title.HeadingY), cfg.Title.HeadingFill)
}

func drawHills(screen *ebiten.Image, width, height, pan, freq, amp float64, clr color.RGBA) {
	for x := 0.0; x < width; x += hillSegment {
		top := height*hillBase - amp*math.Sin((x+pan)*freq*0.2)
		vector.FillRect(screen, float32(x), float32(top), hillSegment, float32(height-top), clr, false)
	}
}

func getOrCreateTitle(ecs *ecs.ECS) *components.TitleData {
	entry, ok := components.Title.First(ecs.World)
	if !ok {
		entry = archetypes.Title.Spawn(ecs)
	}
	return components.Title.Get(entry)
}
