package components

import "github.com/yohamta/donburi"

// TitleData is the title screen singleton.
type TitleData struct {
	Pan float64 // background scroll in pixels
}

var Title = donburi.NewComponentType[TitleData]()
