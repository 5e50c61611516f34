package factory

import (
	"github.com/automoto/greenie/archetypes"
	"github.com/automoto/greenie/components"
	cfg "github.com/automoto/greenie/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: cfg.Camera.Zoom})
}
