package arcball

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// flatProjector maps local space straight onto the screen: X to the right, Y downwards, Z dropped, scaled by
// pixelsPerUnit around an origin.
type flatProjector struct {
	origin        ScreenPoint
	pixelsPerUnit float64
}

func (p flatProjector) LocalToScreen(point Vector) ScreenPoint {
	return ScreenPoint{
		X: p.origin.X + point.X*p.pixelsPerUnit,
		Y: p.origin.Y + point.Y*p.pixelsPerUnit,
	}
}

// testScene is a SceneQuery with a fixed object list.
type testScene struct {
	flatProjector
	objects []SceneObject
}

func (s *testScene) Objects() []SceneObject {
	return s.objects
}

func newTestScene(objects ...SceneObject) *testScene {
	return &testScene{
		flatProjector: flatProjector{origin: ScreenPoint{100, 100}, pixelsPerUnit: 50},
		objects:       objects,
	}
}

func unitObject(name string, position Vector) SceneObject {
	return SceneObject{
		Name:     name,
		Position: position,
		Scale:    Vector{1, 1, 1},
		Bounds:   &BoundingSphere{Radius: 1},
	}
}

// rotationRecorder is a RotationSink remembering every rotation it was handed.
type rotationRecorder struct {
	rotations []EulerAngles
}

func (r *rotationRecorder) SetRotation(x, y, z float64) {
	r.rotations = append(r.rotations, EulerAngles{x, y, z})
}

func (r *rotationRecorder) Last() (EulerAngles, bool) {
	if len(r.rotations) == 0 {
		return EulerAngles{}, false
	}
	return r.rotations[len(r.rotations)-1], true
}

func nearly(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func expectVector(t *testing.T, got, want Vector, eps float64) {
	t.Helper()
	if !nearly(got.X, want.X, eps) || !nearly(got.Y, want.Y, eps) || !nearly(got.Z, want.Z, eps) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func expectRotation(t *testing.T, got, want Quaternion, eps float64) {
	t.Helper()
	if !got.Equivalent(want, eps) {
		t.Errorf("expected rotation %v, got %v", want, got)
	}
}
