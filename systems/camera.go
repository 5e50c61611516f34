package systems

import (
	"github.com/automoto/greenie/components"
	"github.com/automoto/greenie/config"
	"github.com/automoto/greenie/gamemath"
	"github.com/automoto/greenie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	center := components.Object.Get(playerEntry).Center()

	targetX, targetY := clampCameraTarget(e, camera, center.X, center.Y)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X = gamemath.Approach(camera.Position.X, targetX, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Approach(camera.Position.Y, targetY, config.Camera.FollowSmoothing)
}

// SnapCamera centers the camera on the player immediately, used after spawning.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	center := components.Object.Get(playerEntry).Center()
	camera.Position.X, camera.Position.Y = clampCameraTarget(e, camera, center.X, center.Y)
}

// clampCameraTarget keeps the visible area inside the level. Levels smaller
// than the view are centered.
func clampCameraTarget(e *ecs.ECS, camera *components.CameraData, x, y float64) (float64, float64) {
	levelW, levelH := levelSize(e)
	if levelW == 0 {
		return x, y
	}

	zoom := cameraZoom(camera)
	halfW := float64(config.C.Width) / zoom / 2
	halfH := float64(config.C.Height) / zoom / 2

	return gamemath.Clamp(x, halfW, levelW-halfW), gamemath.Clamp(y, halfH, levelH-halfH)
}

func cameraZoom(camera *components.CameraData) float64 {
	// Safety check for zero zoom
	if camera.Zoom == 0 {
		return 1.0
	}
	return camera.Zoom
}

// cameraGeoM sets op to map world coordinates onto screen.
func cameraGeoM(camera *components.CameraData, screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	zoom := cameraZoom(camera)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	op.GeoM.Reset()
	op.GeoM.Translate(-camera.Position.X, -camera.Position.Y)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(float64(width)/2, float64(height)/2)
}

// worldRect converts a world rectangle into screen space for vector drawing.
func worldRect(camera *components.CameraData, screen *ebiten.Image, x, y, w, h float64) (float32, float32, float32, float32) {
	zoom := cameraZoom(camera)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	sx := (x-camera.Position.X)*zoom + float64(width)/2
	sy := (y-camera.Position.Y)*zoom + float64(height)/2
	return float32(sx), float32(sy), float32(w * zoom), float32(h * zoom)
}
