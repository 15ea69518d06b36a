package arcball

// ScreenProjector transforms a point in local scene space into screen (page) coordinates.
type ScreenProjector interface {
	LocalToScreen(point Vector) ScreenPoint
}

// SceneQuery is what the arcball reads from a scene: the objects whose bounding spheres
// make up the arcball sphere, and the transform into screen space.
type SceneQuery interface {
	ScreenProjector
	Objects() []SceneObject
}

// RotationSink receives the arcball's orientation as XYZ Euler angles, in radians.
type RotationSink interface {
	SetRotation(x, y, z float64)
}

// RotationSinkFunc adapts a plain function to the RotationSink interface.
type RotationSinkFunc func(x, y, z float64)

// SetRotation calls f(x, y, z).
func (f RotationSinkFunc) SetRotation(x, y, z float64) {
	f(x, y, z)
}

// SphereMirror is an optional secondary representation (a "stencil" of the scene, for example)
// that recomputes its own arcball sphere whenever a gesture starts. Its result isn't used.
type SphereMirror interface {
	ComputeArcballSphere()
}

// PointerListener receives pointer events. Events are delivered in order: a press, zero or more
// moves, then a release.
type PointerListener interface {
	OnPress(page ScreenPoint)
	OnMove(page ScreenPoint)
	OnRelease()
}

// PointerDispatcher fans pointer events out to each registered listener, in registration order.
type PointerDispatcher struct {
	listeners []PointerListener
}

// NewPointerDispatcher returns a new PointerDispatcher with the given listeners registered.
func NewPointerDispatcher(listeners ...PointerListener) *PointerDispatcher {
	return &PointerDispatcher{listeners: append([]PointerListener(nil), listeners...)}
}

// Register adds listeners to the dispatcher.
func (dispatcher *PointerDispatcher) Register(listeners ...PointerListener) {
	dispatcher.listeners = append(dispatcher.listeners, listeners...)
}

// Unregister removes a listener from the dispatcher, returning true if it was registered.
func (dispatcher *PointerDispatcher) Unregister(listener PointerListener) bool {
	for i, l := range dispatcher.listeners {
		if l == listener {
			dispatcher.listeners = append(dispatcher.listeners[:i], dispatcher.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Press delivers a press at the given page coordinate.
func (dispatcher *PointerDispatcher) Press(page ScreenPoint) {
	for _, l := range dispatcher.listeners {
		l.OnPress(page)
	}
}

// Move delivers a pointer move to the given page coordinate.
func (dispatcher *PointerDispatcher) Move(page ScreenPoint) {
	for _, l := range dispatcher.listeners {
		l.OnMove(page)
	}
}

// Release delivers a release.
func (dispatcher *PointerDispatcher) Release() {
	for _, l := range dispatcher.listeners {
		l.OnRelease()
	}
}
