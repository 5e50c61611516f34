package components

import (
	"github.com/automoto/greenie/leveldata"
	"github.com/automoto/greenie/progression"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton describing the level being played.
type LevelData struct {
	Level      *leveldata.Level
	Background *ebiten.Image // baked tile layers
	Session    *progression.Session
}

var Level = donburi.NewComponentType[LevelData]()
