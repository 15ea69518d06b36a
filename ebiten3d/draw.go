package ebiten3d

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spellbook/arcball"
	"github.com/spellbook/arcball/colors"
)

// OverlayColors are the colors DrawOverlay uses.
type OverlayColors struct {
	Sphere   color.Color // The arcball sphere while idle
	Dragging color.Color // The arcball sphere while a gesture is locked in
	Objects  color.Color // Object bounding spheres
	Axes     [3]color.Color
}

// DefaultOverlayColors returns an OverlayColors with some readable defaults.
func DefaultOverlayColors() OverlayColors {
	return OverlayColors{
		Sphere:   colors.LightGray(),
		Dragging: colors.Yellow(),
		Objects:  colors.SkyBlue(),
		Axes:     [3]color.Color{colors.Red(), colors.Green(), colors.Blue()},
	}
}

// DrawOverlay draws an arcball Overlay onto the screen: the arcball sphere's outline, the objects' bounding spheres,
// and the rotated axes.
func DrawOverlay(screen *ebiten.Image, overlay arcball.Overlay, colors OverlayColors) {

	for _, obj := range overlay.Objects {
		vector.StrokeCircle(screen, float32(obj.Center.X), float32(obj.Center.Y), float32(obj.Radius), 1, colors.Objects, true)
	}

	if !overlay.HasSphere {
		return
	}

	sphereColor := colors.Sphere
	if overlay.Dragging {
		sphereColor = colors.Dragging
	}

	c := overlay.Sphere.Center
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(overlay.Sphere.Radius), 2, sphereColor, true)

	for i, tip := range overlay.Axes {
		vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(tip.X), float32(tip.Y), 2, colors.Axes[i], true)
	}

}
