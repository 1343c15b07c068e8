package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// SkyShader paints the vertical sky gradient
	SkyShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if SkyShader != nil {
		return nil
	}

	skySrc, err := shaderFS.ReadFile("shaders/sky.kage")
	if err != nil {
		return err
	}
	SkyShader, err = ebiten.NewShader(skySrc)
	if err != nil {
		return err
	}

	return nil
}
