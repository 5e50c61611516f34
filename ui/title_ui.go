// Package ui builds the ebitenui widget trees used by the menu scenes.
package ui

import (
	"image/color"

	cfg "github.com/automoto/greenie/config"
	"github.com/automoto/greenie/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	soundOnLabel  = "Sound: On"
	soundOffLabel = "Sound: Off"
)

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart       func()
	OnCredits     func()
	OnToggleSound func() bool // returns true when muted

	soundButton *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title menu. muted seeds the sound button label.
func NewTitleUI(muted bool, onStart, onCredits func(), onToggleSound func() bool) *TitleUI {
	tui := &TitleUI{
		OnStart:       onStart,
		OnCredits:     onCredits,
		OnToggleSound: onToggleSound,
		normalFace:    fonts.UIFace(14),
		smallFace:     fonts.UIFace(10),
	}
	tui.buildUI(muted)
	return tui
}

func (tui *TitleUI) buildUI(muted bool) {
	// Transparent root so the panning background shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	menu := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	menu.AddChild(tui.button("Start", func() { tui.OnStart() }))
	menu.AddChild(tui.button("Credits", func() { tui.OnCredits() }))

	soundLabel := soundOnLabel
	if muted {
		soundLabel = soundOffLabel
	}
	tui.soundButton = tui.button(soundLabel, func() {
		tui.SetMuted(tui.OnToggleSound())
	})
	menu.AddChild(tui.soundButton)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("SPACE to start", &tui.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	menu.AddChild(hint)

	rootContainer.AddChild(menu)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetMuted updates the sound button label.
func (tui *TitleUI) SetMuted(muted bool) {
	if tui.soundButton == nil {
		return
	}
	if textWidget := tui.soundButton.Text(); textWidget != nil {
		if muted {
			textWidget.Label = soundOffLabel
		} else {
			textWidget.Label = soundOnLabel
		}
	}
}

// Update runs the ebitenui event loop for one tick.
func (tui *TitleUI) Update() {
	tui.UI.Update()
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}
