package arcball

import (
	"errors"
	"math"
	"testing"
)

// eventLog is a PointerListener that records what it was sent.
type eventLog struct {
	events []string
}

func (l *eventLog) OnPress(page ScreenPoint) { l.events = append(l.events, "press") }
func (l *eventLog) OnMove(page ScreenPoint) { l.events = append(l.events, "move") }
func (l *eventLog) OnRelease() { l.events = append(l.events, "release") }

func TestDrag(t *testing.T) {

	steps := Drag(ScreenPoint{1, 2}, ScreenPoint{3, 4}, ScreenPoint{5, 6})

	want := []GestureStep{
		{Action: GesturePress, X: 1, Y: 2},
		{Action: GestureMove, X: 3, Y: 4},
		{Action: GestureMove, X: 5, Y: 6},
		{Action: GestureRelease},
	}

	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d: expected %+v, got %+v", i, want[i], steps[i])
		}
	}

}

func TestReplayGesture(t *testing.T) {

	controller, sink, _ := newTestController(unitObject("Cube", NewVectorZero()))
	log := &eventLog{}

	dispatcher := NewPointerDispatcher(controller, log)

	steps := []GestureStep{
		{Action: "PRESS", X: 100, Y: 100},
		{Action: "Move", X: 150, Y: 100},
		{Action: GestureRelease},
	}

	if err := ReplayGesture(dispatcher, steps); err != nil {
		t.Fatal(err)
	}

	if len(log.events) != 3 || log.events[0] != "press" || log.events[2] != "release" {
		t.Errorf("unexpected events %v", log.events)
	}
	if len(sink.rotations) != 1 {
		t.Errorf("expected 1 rotation, got %d", len(sink.rotations))
	}
	expectRotation(t, controller.Baseline(), NewQuaternionFromAxisAngle(VecY, math.Pi), 1e-9)

}

func TestReplayGestureUnknownAction(t *testing.T) {

	log := &eventLog{}

	err := ReplayGesture(NewPointerDispatcher(log), []GestureStep{
		{Action: GesturePress},
		{Action: "wiggle"},
		{Action: GestureRelease},
	})

	if !errors.Is(err, ErrUnknownGestureAction) {
		t.Errorf("expected ErrUnknownGestureAction, got %v", err)
	}
	if len(log.events) != 1 {
		t.Errorf("expected replay to stop at the bad step, got %v", log.events)
	}

}

func TestPointerDispatcherRegistration(t *testing.T) {

	first, second := &eventLog{}, &eventLog{}

	dispatcher := NewPointerDispatcher(first)
	dispatcher.Register(second)
	dispatcher.Press(ScreenPoint{})

	if !dispatcher.Unregister(first) {
		t.Error("expected first to be unregistered")
	}
	if dispatcher.Unregister(first) {
		t.Error("expected a second unregister to fail")
	}

	dispatcher.Release()

	if len(first.events) != 1 || len(second.events) != 2 {
		t.Errorf("unexpected events: %v / %v", first.events, second.events)
	}

}

func TestRotationSinkFunc(t *testing.T) {

	var got EulerAngles
	sink := RotationSinkFunc(func(x, y, z float64) { got = EulerAngles{x, y, z} })

	controller := NewController(newTestScene(unitObject("Cube", NewVectorZero())), sink, Options{})
	controller.SetBaseline(NewQuaternionFromAxisAngle(VecX, 0.5))

	if !nearly(got.X, 0.5, 1e-9) || !nearly(got.Y, 0, 1e-9) || !nearly(got.Z, 0, 1e-9) {
		t.Errorf("expected (0.5, 0, 0), got %v", got)
	}

}
