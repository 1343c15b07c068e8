package ui

import (
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// ControlsUI is the bar under the stage with the playback buttons
type ControlsUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlayPause func()
	OnNext      func()
	OnRestart   func()
	OnMenu      func()

	playButton  *widget.Button
	statusLabel *widget.Label

	faces faces
}

// NewControlsUI builds the control bar.
func NewControlsUI(onPlayPause, onNext, onRestart, onMenu func()) *ControlsUI {
	cui := &ControlsUI{
		OnPlayPause: onPlayPause,
		OnNext:      onNext,
		OnRestart:   onRestart,
		OnMenu:      onMenu,
	}

	cui.faces = loadFaces()
	cui.buildUI()

	return cui
}

func (cui *ControlsUI) buildUI() {
	// Transparent root so the stage shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(barBack)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(5)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, cfg.C.ControlBarH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	cui.playButton = cui.newButton("Pause", 80, func() { call(cui.OnPlayPause) })
	bar.AddChild(cui.playButton)
	bar.AddChild(cui.newButton("Next scene", 110, func() { call(cui.OnNext) }))
	bar.AddChild(cui.newButton("Restart", 80, func() { call(cui.OnRestart) }))
	bar.AddChild(cui.newButton("Menu", 70, func() { call(cui.OnMenu) }))

	cui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.faces.small, &widget.LabelColor{Idle: textMuted}),
	)
	bar.AddChild(cui.statusLabel)

	rootContainer.AddChild(bar)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) newButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, cfg.C.ControlBarH-10)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &cui.faces.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (cui *ControlsUI) Update() {
	cui.UI.Update()
}

// UpdateUI reflects the playback state in the bar
func (cui *ControlsUI) UpdateUI(status systems.TheaterStatus, muted bool) {
	if cui.playButton != nil {
		if textWidget := cui.playButton.Text(); textWidget != nil {
			textWidget.Label = PlayButtonLabel(status)
		}
		cui.playButton.GetWidget().Disabled = status.Finished
	}
	if cui.statusLabel != nil {
		line := systems.HUDStatusLine(status)
		if muted {
			line += "  (muted)"
		}
		cui.statusLabel.Label = line + "    " + cfg.HUD.ControlsHint
	}
}

// PlayButtonLabel is the play button caption for a playback state.
func PlayButtonLabel(status systems.TheaterStatus) string {
	switch {
	case status.Finished:
		return "The end"
	case status.SceneDone:
		return "Next"
	case status.Playing:
		return "Pause"
	}
	return "Play"
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
