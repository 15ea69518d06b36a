// Package ebiten3d connects arcball Controllers to Ebitengine: it turns mouse and touch input into pointer events,
// and draws arcball overlays onto ebiten Images.
package ebiten3d

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spellbook/arcball"
)

// PointerSource polls Ebitengine's mouse and touch state once per tick and delivers the changes as arcball pointer
// events. Only one pointer is tracked at a time; a touch takes over from the mouse while it's held.
type PointerSource struct {
	Button ebiten.MouseButton // The mouse button that drags; defaults to the left button.

	touch       ebiten.TouchID
	touching    bool
	mouseDown   bool
	lastX       int
	lastY       int
	initialized bool
}

// NewPointerSource returns a new PointerSource dragging with the left mouse button.
func NewPointerSource() *PointerSource {
	return &PointerSource{Button: ebiten.MouseButtonLeft}
}

// Update should be called once per ebiten Update(). It delivers a press when the button (or a touch) goes down,
// a move whenever the pointer changes position, and a release when the button (or touch) comes back up.
func (ps *PointerSource) Update(dispatcher *arcball.PointerDispatcher) {

	if !ps.touching && !ps.mouseDown {
		if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
			ps.touch = touches[0]
			ps.touching = true
			x, y := ebiten.TouchPosition(ps.touch)
			ps.setLast(x, y)
			dispatcher.Press(point(x, y))
			return
		}
	}

	if ps.touching {
		if inpututil.IsTouchJustReleased(ps.touch) {
			ps.touching = false
			dispatcher.Release()
			return
		}
		x, y := ebiten.TouchPosition(ps.touch)
		if ps.moved(x, y) {
			dispatcher.Move(point(x, y))
		}
		return
	}

	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ps.Button) {
		ps.mouseDown = true
		ps.setLast(x, y)
		dispatcher.Press(point(x, y))
		return
	}

	if ps.moved(x, y) {
		// Moves are delivered while hovering too; an idle Controller ignores them.
		dispatcher.Move(point(x, y))
	}

	if ps.mouseDown && inpututil.IsMouseButtonJustReleased(ps.Button) {
		ps.mouseDown = false
		dispatcher.Release()
	}

}

// Dragging returns true while the tracked pointer is held down.
func (ps *PointerSource) Dragging() bool {
	return ps.touching || ps.mouseDown
}

func (ps *PointerSource) setLast(x, y int) {
	ps.lastX, ps.lastY = x, y
	ps.initialized = true
}

func (ps *PointerSource) moved(x, y int) bool {
	if ps.initialized && x == ps.lastX && y == ps.lastY {
		return false
	}
	ps.setLast(x, y)
	return true
}

func point(x, y int) arcball.ScreenPoint {
	return arcball.NewScreenPoint(float64(x), float64(y))
}
