package components

import "github.com/yohamta/donburi"

// NoticeData is a singleton tracking the popup text currently shown
type NoticeData struct {
	Text         string
	DisplayTimer int // Frames remaining to display current notice
}

var Notice = donburi.NewComponentType[NoticeData]()
