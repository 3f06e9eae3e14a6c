package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	LoadDefaults(14, 32)
	for _, name := range []FontName{HUD, Small, Big, Title} {
		if name.Get() == nil {
			t.Errorf("font %s not loaded", name)
		}
		if name.Face() != name.Face() {
			t.Errorf("face %s not cached", name)
		}
	}
}

func TestReloadReplacesFace(t *testing.T) {
	LoadFontWithSize(HUD, goregular.TTF, 10)
	before := HUD.Face()
	LoadFontWithSize(HUD, goregular.TTF, 20)
	if HUD.Face() == before {
		t.Error("reloading a font kept the stale face")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}
