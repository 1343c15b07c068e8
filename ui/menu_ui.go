package ui

import (
	"image/color"

	"github.com/automoto/neighbors/story"
	"github.com/automoto/neighbors/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	descriptionWidth = 520
	descriptionLines = 4
	blurbWidth       = 440
)

// MenuUI is the episode picker shown before the theater
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay       func(id string)
	OnToggleMute func() bool

	selected int

	episodeButtons []*widget.Button
	titleLabel     *widget.Label
	descLabels     [descriptionLines]*widget.Label
	castContainer  *widget.Container
	castShown      int // episode index the cast rows were built for
	muteButton     *widget.Button

	faces faces

	muted       bool
	initialized bool
}

// NewMenuUI builds the menu with the given episode selected.
func NewMenuUI(selectedID string, muted bool, onPlay func(id string), onToggleMute func() bool) *MenuUI {
	mui := &MenuUI{
		OnPlay:       onPlay,
		OnToggleMute: onToggleMute,
		selected:     story.IndexOf(selectedID),
		castShown:    -1,
		muted:        muted,
	}
	if mui.selected < 0 {
		mui.selected = 0
	}

	mui.faces = loadFaces()
	mui.buildUI()

	return mui
}

// Selected is the id of the highlighted episode.
func (mui *MenuUI) Selected() string {
	return story.Episodes[mui.selected].ID
}

// Select highlights the episode at index i, wrapping around the catalog.
func (mui *MenuUI) Select(i int) {
	n := len(story.Episodes)
	mui.selected = ((i % n) + n) % n
	mui.UpdateUI()
}

// SetMuted updates the sound button after a keyboard toggle.
func (mui *MenuUI) SetMuted(muted bool) {
	mui.muted = muted
	mui.UpdateUI()
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(menuBack)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("NEIGHBORS", &mui.faces.title, &widget.LabelColor{Idle: textWhite}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Pick an episode, then drag and tap the neighbors while it plays.",
			&mui.faces.small, &widget.LabelColor{Idle: textMuted}),
	))

	contentContainer.AddChild(mui.buildEpisodeList())
	contentContainer.AddChild(mui.buildDetails())
	contentContainer.AddChild(mui.buildButtonsContainer())

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildEpisodeList() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	mui.episodeButtons = make([]*widget.Button, len(story.Episodes))
	for i, ep := range story.Episodes {
		i := i
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 34)),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(ep.Title, &mui.faces.small, buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				mui.Select(i)
			}),
		)
		mui.episodeButtons[i] = button
		container.AddChild(button)
	}
	return container
}

func (mui *MenuUI) buildDetails() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 60})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(descriptionWidth+24, 280)),
	)

	mui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.faces.bold, &widget.LabelColor{Idle: textWhite}),
	)
	container.AddChild(mui.titleLabel)

	for i := range mui.descLabels {
		mui.descLabels[i] = widget.NewLabel(
			widget.LabelOpts.Text("", &mui.faces.normal, &widget.LabelColor{Idle: textWhite}),
		)
		container.AddChild(mui.descLabels[i])
	}

	mui.castContainer = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
	container.AddChild(mui.castContainer)

	return container
}

// CastCard is one cast member as listed under the episode description.
type CastCard struct {
	Color  color.RGBA
	Icon   string // first favourite emote
	Name        string
	Traits      string
	Description string
}

// CastCards lists the episode's cast in billing order. Names missing from the
// roster are left out.
func CastCards(ep story.Episode) []CastCard {
	cards := make([]CastCard, 0, len(ep.Cast))
	for _, name := range ep.Cast {
		profile, ok := story.Lookup(name)
		if !ok {
			continue
		}
		card := CastCard{
			Color:       profile.Color,
			Name:        profile.Name,
			Traits:      profile.Traits,
			Description: profile.Description,
		}
		if len(profile.Emotes) > 0 {
			card.Icon = profile.Emotes[0]
		}
		cards = append(cards, card)
	}
	return cards
}

func (mui *MenuUI) rebuildCast(ep story.Episode) {
	mui.castContainer.RemoveChildren()
	for _, card := range CastCards(ep) {
		mui.castContainer.AddChild(mui.buildCastRow(card))
	}
}

func (mui *MenuUI) buildCastRow(card CastCard) *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	// Sprite colour swatch with the emote on it
	iconPadding := widget.Insets{Left: 6, Right: 6, Top: 2, Bottom: 2}
	icon := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(card.Color)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&iconPadding),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(44, 20)),
	)
	icon.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(card.Icon, &mui.faces.small, &widget.LabelColor{Idle: textWhite}),
	))
	row.AddChild(icon)

	details := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(1),
		)),
	)
	details.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(card.Name+"  ·  "+card.Traits, &mui.faces.small, &widget.LabelColor{Idle: textWhite}),
	))
	details.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(Blurb(card.Description, mui.faces.small), &mui.faces.small, &widget.LabelColor{Idle: textMuted}),
	))
	row.AddChild(details)

	return row
}

func (mui *MenuUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 36)),
		widget.ButtonOpts.Image(accentButtonImage()),
		widget.ButtonOpts.Text("PLAY", &mui.faces.bold, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlay != nil {
				mui.OnPlay(mui.Selected())
			}
		}),
	)
	container.AddChild(playButton)

	mui.muteButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 36)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(muteLabel(mui.muted), &mui.faces.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnToggleMute != nil {
				mui.muted = mui.OnToggleMute()
				mui.UpdateUI()
			}
		}),
	)
	container.AddChild(mui.muteButton)

	return container
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !mui.initialized {
		mui.initialized = true
		mui.UpdateUI()
	}
}

// UpdateUI refreshes the widgets from the selection
func (mui *MenuUI) UpdateUI() {
	ep := story.Episodes[mui.selected]

	for i, button := range mui.episodeButtons {
		textWidget := button.Text()
		if textWidget == nil {
			continue
		}
		textWidget.Label = story.Episodes[i].Title
		if i == mui.selected {
			textWidget.Label = "> " + textWidget.Label + " <"
		}
	}

	if mui.titleLabel != nil {
		mui.titleLabel.Label = ep.Title
	}

	lines := DescriptionLines(ep.Description, mui.faces.normal)
	for i, label := range mui.descLabels {
		if label == nil {
			continue
		}
		label.Label = ""
		if i < len(lines) {
			label.Label = lines[i]
		}
	}

	if mui.castContainer != nil && mui.castShown != mui.selected {
		mui.castShown = mui.selected
		mui.rebuildCast(ep)
	}
	if mui.muteButton != nil {
		if textWidget := mui.muteButton.Text(); textWidget != nil {
			textWidget.Label = muteLabel(mui.muted)
		}
	}
}

// DescriptionLines wraps a description to the details panel, ending with an
// ellipsis when it runs past the available lines.
func DescriptionLines(desc string, face text.Face) []string {
	lines := systems.WrapText(desc, descriptionWidth, func(s string) int {
		return int(text.Advance(s, face))
	})
	if len(lines) > descriptionLines {
		lines = lines[:descriptionLines]
		lines[descriptionLines-1] += "..."
	}
	return lines
}

// Blurb fits a character description on one line of a cast row.
func Blurb(desc string, face text.Face) string {
	lines := systems.WrapText(desc, blurbWidth, func(s string) int {
		return int(text.Advance(s, face))
	})
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	}
	return lines[0] + "..."
}

func muteLabel(muted bool) string {
	if muted {
		return "Sound: off"
	}
	return "Sound: on"
}
