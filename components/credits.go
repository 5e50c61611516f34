package components

import "github.com/yohamta/donburi"

// CreditsData tracks the credits roll.
type CreditsData struct {
	Offset  float64 // distance scrolled so far
	Leaving bool    // fading out towards the title
}

var Credits = donburi.NewComponentType[CreditsData]()
