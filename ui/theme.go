package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the ebitenui fonts shared by the menu and the control bar.
// Stored as text.Face for ebitenui compatibility.
type faces struct {
	title  text.Face
	bold   text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	return faces{
		title:  &text.GoTextFace{Source: bold, Size: 32},
		bold:   &text.GoTextFace{Source: bold, Size: 18},
		normal: &text.GoTextFace{Source: regular, Size: 15},
		small:  &text.GoTextFace{Source: regular, Size: 12},
	}
}

var (
	textWhite    = color.RGBA{255, 255, 255, 255}
	textMuted    = color.RGBA{200, 200, 220, 255}
	textHover    = color.RGBA{255, 240, 180, 255}
	textPressed  = color.RGBA{200, 190, 150, 255}
	textDisabled = color.RGBA{100, 100, 100, 255}
	menuBack     = color.RGBA{35, 52, 84, 255}
	barBack      = color.RGBA{25, 30, 45, 235}
)

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     textWhite,
		Hover:    textHover,
		Pressed:  textPressed,
		Disabled: textDisabled,
	}
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{74, 144, 226, 255})
	hover := image.NewNineSliceColor(color.RGBA{100, 170, 250, 255})
	pressed := image.NewNineSliceColor(color.RGBA{50, 110, 190, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// accentButtonImage is the green call-to-action button.
func accentButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{81, 207, 102, 255})
	hover := image.NewNineSliceColor(color.RGBA{110, 225, 130, 255})
	pressed := image.NewNineSliceColor(color.RGBA{60, 170, 80, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
