package colors

import (
	"image/color"
	"testing"
)

func TestNewClamps(t *testing.T) {
	if c := New(-1, 0.5, 2, 1); c != (color.NRGBA{0, 128, 255, 255}) {
		t.Errorf("unexpected color %v", c)
	}
	if Transparent().A != 0 || White() != (color.NRGBA{255, 255, 255, 255}) {
		t.Error("unexpected named colors")
	}
}
