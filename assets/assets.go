// Package assets turns embedded data into ebiten resources: baked level
// backgrounds and decoded sound effects.
package assets

import (
	"image/color"

	"github.com/automoto/greenie/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Tiles get a lighter top edge so platforms read against the background.
const edgeHeight = 3

// BakeBackground draws every tile layer of level into one image the size of
// the level. The sky colour is left to the renderer so the image can be
// drawn under a moving camera.
func BakeBackground(level *leveldata.Level) *ebiten.Image {
	img := ebiten.NewImage(max(level.Width, 1), max(level.Height, 1))
	for _, t := range level.Tiles {
		x, y := float32(t.X), float32(t.Y)
		w, h := float32(t.W), float32(t.H)
		if !t.Solid {
			// decor is drawn as a small tuft sitting on the tile below
			vector.FillRect(img, x+w/4, y+h/2, w/2, h/2, t.Fill, false)
			continue
		}
		vector.FillRect(img, x, y, w, h, t.Fill, false)
		if isTop(level, t) {
			vector.FillRect(img, x, y, w, edgeHeight, lighten(t.Fill), false)
		}
	}
	return img
}

// isTop reports whether no solid tile sits directly above t.
func isTop(level *leveldata.Level, t leveldata.TileRect) bool {
	for _, s := range level.Solids {
		if s.Y+s.H == t.Y && s.X <= t.X && t.X < s.X+s.W {
			return false
		}
	}
	return true
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 { return v + (255-v)/3 }
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}
