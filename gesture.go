package arcball

import (
	"fmt"
	"strings"
)

// GestureAction is the kind of pointer event a GestureStep delivers.
type GestureAction string

const (
	GesturePress   GestureAction = "press"
	GestureMove    GestureAction = "move"
	GestureRelease GestureAction = "release"
)

// GestureStep is one pointer event of a scripted gesture. X and Y are ignored for releases.
type GestureStep struct {
	Action GestureAction `yaml:"action"`
	X      float64       `yaml:"x"`
	Y      float64       `yaml:"y"`
}

// Drag returns the steps of a simple gesture: a press at from, a move to each of the given points, and a release.
func Drag(from ScreenPoint, to ...ScreenPoint) []GestureStep {
	steps := []GestureStep{{Action: GesturePress, X: from.X, Y: from.Y}}
	for _, p := range to {
		steps = append(steps, GestureStep{Action: GestureMove, X: p.X, Y: p.Y})
	}
	return append(steps, GestureStep{Action: GestureRelease})
}

// ReplayGesture delivers the given steps, in order, through the dispatcher. It stops at the first step with an
// unknown action, returning an error wrapping ErrUnknownGestureAction.
func ReplayGesture(dispatcher *PointerDispatcher, steps []GestureStep) error {
	for i, step := range steps {
		page := ScreenPoint{step.X, step.Y}
		switch GestureAction(strings.ToLower(string(step.Action))) {
		case GesturePress:
			dispatcher.Press(page)
		case GestureMove:
			dispatcher.Move(page)
		case GestureRelease:
			dispatcher.Release()
		default:
			return fmt.Errorf("gesture step %d (%q): %w", i, step.Action, ErrUnknownGestureAction)
		}
	}
	return nil
}
