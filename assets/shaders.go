package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// PanicShader darkens the screen edges red while the princess is under attack
	PanicShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if PanicShader != nil {
		return nil
	}

	panicSrc, err := shaderFS.ReadFile("shaders/panic.kage")
	if err != nil {
		return err
	}
	PanicShader, err = ebiten.NewShader(panicSrc)
	if err != nil {
		return err
	}

	return nil
}
