package components

import (
	"github.com/automoto/greenie/progression"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object bounds in progression coordinates.
func (o *ObjectData) Rect() progression.Rect {
	return progression.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Center returns the middle of the object.
func (o *ObjectData) Center() progression.Vec {
	return progression.Vec{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

var Object = donburi.NewComponentType[ObjectData]()
