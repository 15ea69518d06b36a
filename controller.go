package arcball

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// ControllerState is the gesture state of a Controller.
type ControllerState int

const (
	StateIdle     ControllerState = iota // No gesture in progress
	StateDragging                        // A press has started a gesture that hasn't been released yet
)

func (state ControllerState) String() string {
	switch state {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	}
	return fmt.Sprintf("ControllerState(%d)", int(state))
}

// Options configures a Controller.
type Options struct {
	// ArcballCenter is the center of the arcball sphere in local scene space. If nil, it's calculated from the
	// aggregate bounding sphere of the scene's objects. Defaults to nil.
	ArcballCenter *Vector
	// ArcballRadius is the radius of the arcball sphere. If 0, it's calculated from the aggregate bounding sphere
	// of the scene's objects. Defaults to 0.
	ArcballRadius float64
	// Stencil, if set, is asked to recompute its own arcball sphere whenever a gesture starts.
	Stencil SphereMirror
	// Logger receives gesture diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Controller is an arcball: it turns pointer drags into rotations of a RotationSink. On press, it locks in
// a sphere around the scene and the pointer's direction on it; every move afterwards rotates the sink by
// the rotation between that anchor direction and the pointer's current one, on top of whatever rotation
// previous gestures left behind.
//
// Controller implements PointerListener. It isn't safe for concurrent use; events are expected in order
// from a single event loop.
type Controller struct {
	scene    SceneQuery
	sink     RotationSink
	resolver SphereResolver
	stencil  SphereMirror
	logger   *zap.Logger
	rotation RotationState
	reset    *orientationTween
}

// NewController returns a new, idle Controller reading from the given scene and writing to the given sink.
func NewController(scene SceneQuery, sink RotationSink, options Options) *Controller {

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{
		scene:    scene,
		sink:     sink,
		resolver: NewSphereResolver(options.ArcballCenter, options.ArcballRadius),
		stencil:  options.Stencil,
		logger:   logger,
		rotation: NewRotationState(),
	}

}

// State returns whether the Controller is idle or in the middle of a drag.
func (controller *Controller) State() ControllerState {
	if controller.rotation.Active() {
		return StateDragging
	}
	return StateIdle
}

// Rotation returns the Controller's current orientation: the in-progress rotation while dragging,
// or the committed one otherwise.
func (controller *Controller) Rotation() Quaternion {
	if controller.reset != nil {
		return controller.reset.current
	}
	return controller.rotation.Current()
}

// Baseline returns the committed orientation that the next gesture composes onto.
func (controller *Controller) Baseline() Quaternion {
	return controller.rotation.Baseline()
}

// SetBaseline replaces the committed orientation and emits it to the sink. Any drag or reset in progress is
// abandoned.
func (controller *Controller) SetBaseline(rotation Quaternion) {
	controller.reset = nil
	controller.rotation.SetBaseline(rotation)
	controller.emit(controller.rotation.Baseline())
}

// ActiveSphere returns the screen sphere locked in by the gesture in progress.
func (controller *Controller) ActiveSphere() (ScreenSphere, bool) {
	return controller.rotation.Sphere()
}

// Sphere resolves the arcball sphere for the scene as it currently is, in local scene space. The bool is false
// if the sphere is degenerate.
func (controller *Controller) Sphere() (BoundingSphere, bool) {
	return controller.resolver.Resolve(controller.scene.Objects())
}

// Press starts a gesture at the given page coordinate. The sphere is resolved and projected here, and stays the
// same for the rest of the gesture even if the scene moves. If a gesture is already in progress, it's committed
// first. A reset in progress is stopped where it is.
//
// If there's no usable sphere, Press returns ErrDegenerateSphere and the Controller stays idle.
func (controller *Controller) Press(page ScreenPoint) error {

	if controller.rotation.Active() {
		controller.logger.Debug("press during drag; committing previous gesture")
		controller.rotation.Commit()
	}

	if controller.reset != nil {
		controller.rotation.SetBaseline(controller.reset.current)
		controller.reset = nil
	}

	sphere, ok := controller.Sphere()

	if controller.stencil != nil {
		controller.stencil.ComputeArcballSphere()
	}

	if !ok {
		return fmt.Errorf("arcball: press at (%g, %g): %w", page.X, page.Y, ErrDegenerateSphere)
	}

	screenSphere := ProjectToScreen(sphere, controller.scene)

	if screenSphere.IsDegenerate() {
		return fmt.Errorf("arcball: sphere projects to radius %g on screen: %w", screenSphere.Radius, ErrDegenerateSphere)
	}

	anchor := ProjectPointerOntoSphere(page, screenSphere)

	controller.rotation.Begin(anchor, screenSphere)

	controller.logger.Debug("arcball gesture started",
		zap.Float64("x", page.X),
		zap.Float64("y", page.Y),
		zap.Float64("sphereX", screenSphere.Center.X),
		zap.Float64("sphereY", screenSphere.Center.Y),
		zap.Float64("sphereRadius", screenSphere.Radius),
	)

	return nil

}

// OnPress implements PointerListener. A press that can't start a gesture is logged and otherwise ignored.
func (controller *Controller) OnPress(page ScreenPoint) {
	if err := controller.Press(page); err != nil {
		controller.logger.Warn("arcball drag declined", zap.Error(err))
	}
}

// OnMove implements PointerListener. While dragging, it rotates the sink by the rotation between the gesture's
// anchor direction and the pointer's direction on the locked sphere. Moves while idle are ignored.
func (controller *Controller) OnMove(page ScreenPoint) {

	sphere, dragging := controller.rotation.Sphere()
	if !dragging {
		return
	}

	current := controller.rotation.Update(ProjectPointerOntoSphere(page, sphere))

	controller.emit(current)

}

// OnRelease implements PointerListener, ending the gesture and keeping its rotation as the new baseline.
func (controller *Controller) OnRelease() {

	if !controller.rotation.Active() {
		return
	}

	controller.rotation.Commit()

	euler := controller.rotation.Baseline().ToEuler()
	controller.logger.Debug("arcball gesture committed",
		zap.Float64("x", euler.X),
		zap.Float64("y", euler.Y),
		zap.Float64("z", euler.Z),
	)

}

// Reset eases the orientation back to the identity rotation over duration seconds, using the given easing
// (nil for ease.OutCubic). Call Update() to advance it. A gesture in progress is committed first. A duration of
// 0 or less snaps back immediately.
func (controller *Controller) Reset(duration float32, easing ease.TweenFunc) {

	controller.rotation.Commit()

	if duration <= 0 {
		controller.SetBaseline(NewQuaternionIdentity())
		return
	}

	controller.reset = newOrientationTween(controller.rotation.Baseline(), NewQuaternionIdentity(), duration, easing)

}

// Resetting returns true while a Reset() is being eased.
func (controller *Controller) Resetting() bool {
	return controller.reset != nil
}

// Update advances a Reset() in progress by dt seconds, emitting the eased orientation. It returns true once the
// reset is finished (or if none was running).
func (controller *Controller) Update(dt float32) bool {

	if controller.reset == nil {
		return true
	}

	rotation, finished := controller.reset.Update(dt)

	controller.emit(rotation)

	if finished {
		controller.reset = nil
		controller.rotation.SetBaseline(rotation)
		controller.logger.Debug("arcball reset finished")
	}

	return finished

}

func (controller *Controller) emit(rotation Quaternion) {
	if controller.sink == nil {
		return
	}
	euler := rotation.ToEuler()
	controller.sink.SetRotation(euler.X, euler.Y, euler.Z)
}
