package arcball

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a simple look-at camera that projects scene points onto a screen of a given size in pixels.
// It's the default ScreenProjector for a Scene.
type Camera struct {
	Position Vector // Where the camera is
	Target   Vector // The point the camera looks at
	Up       Vector // The camera's upwards direction

	width, height int
	perspective   bool
	fieldOfView   float64 // Vertical field of view, in degrees
	orthoScale    float64 // Visible height of the view in world units, when orthographic
	near, far     float64
}

// NewCamera creates a new perspective Camera with the specified width and height, looking at the origin from
// 10 units back along +Z.
func NewCamera(w, h int) *Camera {
	return &Camera{
		Position:    NewVector(0, 0, 10),
		Target:      NewVectorZero(),
		Up:          VecY,
		width:       w,
		height:      h,
		perspective: true,
		fieldOfView: 60,
		orthoScale:  20,
		near:        0.1,
		far:         100,
	}
}

// Resize resizes the screen the Camera projects onto.
func (camera *Camera) Resize(w, h int) {
	camera.width = w
	camera.height = h
}

// Size returns the width and height of the screen the Camera projects onto.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float64 {
	if camera.height == 0 {
		return 1
	}
	return float64(camera.width) / float64(camera.height)
}

// SetPerspective sets the Camera's projection to be a perspective (true) or orthographic (false) projection.
func (camera *Camera) SetPerspective(perspective bool) {
	camera.perspective = perspective
}

// Perspective returns whether the Camera is perspective or not (orthographic).
func (camera *Camera) Perspective() bool {
	return camera.perspective
}

// SetFieldOfView sets the vertical field of view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	camera.fieldOfView = fovY
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetOrthoScale sets the visible height of an orthographic Camera's view, in world units.
func (camera *Camera) SetOrthoScale(scale float64) {
	camera.orthoScale = scale
}

// OrthoScale returns the visible height of an orthographic Camera's view.
func (camera *Camera) OrthoScale() float64 {
	return camera.orthoScale
}

// Near returns the Camera's near clipping plane.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the Camera's near clipping plane.
func (camera *Camera) SetNear(near float64) {
	camera.near = near
}

// Far returns the Camera's far clipping plane.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the Camera's far clipping plane.
func (camera *Camera) SetFar(far float64) {
	camera.far = far
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(toMgl(camera.Position), toMgl(camera.Target), toMgl(camera.Up))
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() mgl64.Mat4 {

	if camera.perspective {
		return mgl64.Perspective(mgl64.DegToRad(camera.fieldOfView), camera.AspectRatio(), camera.near, camera.far)
	}

	h := camera.orthoScale / 2
	w := h * camera.AspectRatio()
	return mgl64.Ortho(-w, w, -h, h, camera.near, camera.far)

}

// LocalToScreen transforms a 3D position in the world to a pixel position onscreen, with the origin at the top-left
// and Y growing downwards.
func (camera *Camera) LocalToScreen(point Vector) ScreenPoint {
	win := mgl64.Project(toMgl(point), camera.ViewMatrix(), camera.Projection(), 0, 0, camera.width, camera.height)
	return ScreenPoint{X: win.X(), Y: float64(camera.height) - win.Y()}
}

// ScreenToWorld converts a pixel position onscreen back into a 3D point, at the given depth between the near (0)
// and far (1) planes.
func (camera *Camera) ScreenToWorld(p ScreenPoint, depth float64) (Vector, error) {
	win := mgl64.Vec3{p.X, float64(camera.height) - p.Y, depth}
	obj, err := mgl64.UnProject(win, camera.ViewMatrix(), camera.Projection(), 0, 0, camera.width, camera.height)
	if err != nil {
		return Vector{}, err
	}
	return fromMgl(obj), nil
}

func toMgl(vec Vector) mgl64.Vec3 {
	return mgl64.Vec3{vec.X, vec.Y, vec.Z}
}

func fromMgl(vec mgl64.Vec3) Vector {
	return Vector{vec[0], vec[1], vec[2]}
}
