// Package snapshot renders arcball overlays to images without a window, for headless runs and golden checks.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/spellbook/arcball"
	"github.com/spellbook/arcball/colors"
)

// circleSegments is how many line segments approximate a circle's outline.
const circleSegments = 64

// Style holds the colors and line widths a Render uses.
type Style struct {
	Background color.Color
	Sphere     color.Color
	Dragging   color.Color
	Objects    color.Color
	Axes       [3]color.Color
	Text       color.Color
	LineWidth  float64
	Label      bool // Whether to print the rotation in the top-left corner
}

// DefaultStyle returns a Style matching the on-screen overlay's colors.
func DefaultStyle() Style {
	return Style{
		Background: colors.DarkestGray(),
		Sphere:     colors.LightGray(),
		Dragging:   colors.Yellow(),
		Objects:    colors.SkyBlue(),
		Axes:       [3]color.Color{colors.Red(), colors.Green(), colors.Blue()},
		Text:       colors.White(),
		LineWidth:  2,
		Label:      true,
	}
}

// Render draws the overlay onto a new w x h image.
func Render(overlay arcball.Overlay, w, h int, style Style) *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	lineWidth := style.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}

	for _, obj := range overlay.Objects {
		strokeCircle(img, obj, lineWidth/2, style.Objects)
	}

	if overlay.HasSphere {

		sphereColor := style.Sphere
		if overlay.Dragging {
			sphereColor = style.Dragging
		}

		strokeCircle(img, overlay.Sphere, lineWidth, sphereColor)

		for i, tip := range overlay.Axes {
			strokeLine(img, overlay.Sphere.Center, tip, lineWidth, style.Axes[i])
		}

	}

	if style.Label {
		deg := overlay.Rotation.ToDegrees()
		drawText(img, 4, 14, fmt.Sprintf("X %.1f  Y %.1f  Z %.1f", deg.X, deg.Y, deg.Z), style.Text)
	}

	return img

}

// Encode renders the overlay and writes it to w as a lossless WebP.
func Encode(w io.Writer, overlay arcball.Overlay, width, height int, style Style) error {
	if err := nativewebp.Encode(w, Render(overlay, width, height, style), nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}

// WriteFile renders the overlay into a WebP file at path, creating its directory if needed.
func WriteFile(path string, overlay arcball.Overlay, width, height int, style Style) error {

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, overlay, width, height, style); err != nil {
		f.Close()
		return err
	}

	return f.Close()

}

// strokeCircle draws a ring of the given width around the circle's outline. The inner edge winds the other way
// so its area cancels out.
func strokeCircle(dst *image.RGBA, circle arcball.ScreenSphere, width float64, col color.Color) {

	if circle.Radius <= 0 || !finite(circle.Center.X, circle.Center.Y, circle.Radius) {
		return
	}

	outer := circle.Radius + width/2
	inner := math.Max(circle.Radius-width/2, 0)

	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())

	ring := func(radius float64, dir float64) {
		for i := 0; i <= circleSegments; i++ {
			a := dir * 2 * math.Pi * float64(i) / circleSegments
			x := float32(circle.Center.X + math.Cos(a)*radius)
			y := float32(circle.Center.Y + math.Sin(a)*radius)
			if i == 0 {
				r.MoveTo(x, y)
			} else {
				r.LineTo(x, y)
			}
		}
		r.ClosePath()
	}

	ring(outer, 1)
	if inner > 0 {
		ring(inner, -1)
	}

	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})

}

// strokeLine draws a line segment of the given width as a quad.
func strokeLine(dst *image.RGBA, from, to arcball.ScreenPoint, width float64, col color.Color) {

	if !finite(from.X, from.Y, to.X, to.Y) {
		return
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Half-width normal
	nx, ny := -dy/length*width/2, dx/length*width/2

	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	r.LineTo(float32(to.X+nx), float32(to.Y+ny))
	r.LineTo(float32(to.X-nx), float32(to.Y-ny))
	r.LineTo(float32(from.X-nx), float32(from.Y-ny))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})

}

func drawText(dst *image.RGBA, x, y int, txt string, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(txt)
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
