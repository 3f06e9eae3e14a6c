package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
	Big   FontName = "big"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font wrapped for text/v2 and ebitenui
func (f FontName) Face() text.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	face := text.NewGoXFace(getFont(f))
	faces[f] = face
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}
)

// LoadDefaults loads the Go fonts at the sizes used by the HUD and menus
func LoadDefaults(hudSize, titleSize float64) {
	LoadFontWithSize(HUD, goregular.TTF, hudSize)
	LoadFontWithSize(Small, goregular.TTF, hudSize-3)
	LoadFontWithSize(Big, gobold.TTF, hudSize+6)
	LoadFontWithSize(Title, gobold.TTF, titleSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: Could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(faces, name)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
