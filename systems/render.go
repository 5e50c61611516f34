package systems

import (
	"image/color"

	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/progression"
	"github.com/automoto/greenie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDoors renders door frames, highlighting the one the player stands in.
func DrawDoors(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	session := currentSession(ecs)

	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		o := components.Object.Get(e)
		x, y, w, h := worldRect(camera, screen, o.X, o.Y, o.W, o.H)

		vector.FillRect(screen, x, y, w, h, cfg.Collectible.DoorColor, false)
		frame := lighten(cfg.Collectible.DoorColor)
		if session != nil {
			if active, ok := session.Doors().Active(); ok && active.Index == door.Door.Index {
				frame = cfg.Collectible.ActiveColor
			}
		}
		vector.StrokeRect(screen, x, y, w, h, 2, frame, false)
	})
}

// DrawCollectibles renders keys, locks and the finale.
func DrawCollectibles(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	session := currentSession(ecs)

	components.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Collectible.Get(e)
		o := components.Object.Get(e)
		x, y, w, h := worldRect(camera, screen, o.X, o.Y+float64(item.Offset), o.W, o.H)

		switch item.Kind {
		case progression.KindKey:
			drawKey(screen, x, y, w, h)
		case progression.KindLock:
			active := false
			if session != nil {
				if lock, ok := session.Collectibles().ActiveLock(); ok && lock.ID == item.ID {
					active = true
				}
			}
			drawLock(screen, x, y, w, h, active)
		case progression.KindFinale:
			revealed := session != nil && session.Collectibles().FinaleInteractable()
			drawFinale(screen, x, y, w, h, revealed)
		}
	})
}

func drawKey(screen *ebiten.Image, x, y, w, h float32) {
	c := cfg.Collectible.KeyColor
	// ring and shaft
	vector.StrokeCircle(screen, x+w*0.3, y+h*0.5, w*0.22, w*0.1, c, true)
	vector.FillRect(screen, x+w*0.5, y+h*0.45, w*0.5, h*0.12, c, false)
	vector.FillRect(screen, x+w*0.8, y+h*0.55, w*0.1, h*0.18, c, false)
}

func drawLock(screen *ebiten.Image, x, y, w, h float32, active bool) {
	c := cfg.Collectible.LockColor
	vector.StrokeCircle(screen, x+w/2, y+h*0.35, w*0.25, w*0.1, c, true)
	vector.FillRect(screen, x+w*0.15, y+h*0.4, w*0.7, h*0.6, c, false)
	if active {
		vector.StrokeRect(screen, x, y, w, h, 2, cfg.Collectible.ActiveColor, false)
	}
}

func drawFinale(screen *ebiten.Image, x, y, w, h float32, revealed bool) {
	c := cfg.Collectible.FinaleColor
	if !revealed {
		c = withAlpha(c, 0.25)
	}
	vector.FillRect(screen, x, y, w, h, c, false)
	vector.StrokeRect(screen, x, y, w, h, 2, cfg.Collectible.LockColor, false)
}

// DrawPlayer renders Greenie as a box with eyes, squashed and striding by
// animation frame.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)

		var squash, stride float32
		if anim.CurrentAnimation != nil {
			switch anim.CurrentState {
			case cfg.Idle:
				squash = anim.CurrentAnimation.Pick(cfg.IdleSquash)
			case cfg.Walk:
				stride = anim.CurrentAnimation.Pick(cfg.WalkStride)
			}
		}

		x, y, w, h := worldRect(camera, screen, o.X, o.Y, o.W, o.H)
		zoom := float32(cameraZoom(camera))
		squash *= zoom
		stride *= zoom

		// legs
		legW, legH := w*0.25, h*0.2
		vector.FillRect(screen, x+w*0.15+stride, y+h-legH, legW, legH, cfg.Player.BodyColor, false)
		vector.FillRect(screen, x+w*0.6-stride, y+h-legH, legW, legH, cfg.Player.BodyColor, false)

		// body
		vector.FillRect(screen, x, y+squash, w, h-legH-squash+1, cfg.Player.BodyColor, false)

		// eyes look where Greenie faces
		eyeX := x + w*0.55
		if player.Direction.X < 0 {
			eyeX = x + w*0.15
		}
		eyeY := y + squash + h*0.2
		vector.FillRect(screen, eyeX, eyeY, w*0.3, h*0.15, cfg.Player.EyeColor, false)
		vector.FillRect(screen, eyeX+w*0.1, eyeY+h*0.04, w*0.12, h*0.09, cfg.Black, false)
	})
}

func getCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

func currentSession(ecs *ecs.ECS) *progression.Session {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Session
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 { return v + (255-v)/2 }
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: 255}
}

// withAlpha scales every channel so the result stays premultiplied.
func withAlpha(c color.RGBA, a float32) color.RGBA {
	a = max(0, min(a, 1))
	scale := func(v uint8) uint8 { return uint8(float32(v) * a) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
