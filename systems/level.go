package systems

import (
	"github.com/automoto/greenie/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var levelDrawOp = &ebiten.DrawImageOptions{}

// DrawLevel fills the sky and draws the baked tile layers under the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Level == nil {
		return
	}
	screen.Fill(levelData.Level.Background)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	if levelData.Background != nil {
		cameraGeoM(camera, screen, levelDrawOp)
		screen.DrawImage(levelData.Background, levelDrawOp)
	}
}
