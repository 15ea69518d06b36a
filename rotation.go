package arcball

// rotationSession is the transient state of a single drag gesture.
type rotationSession struct {
	anchor   Vector       // Unit direction the gesture started from
	sphere   ScreenSphere // Sphere locked in for the whole gesture
	baseline Quaternion   // Committed rotation when the gesture started
}

// RotationState holds an arcball's committed orientation (the baseline that gestures compose onto) and the
// in-progress rotation of the active gesture, if any.
type RotationState struct {
	baseline Quaternion
	current  Quaternion
	session  *rotationSession
}

// NewRotationState returns a RotationState with the identity rotation as its baseline.
func NewRotationState() RotationState {
	return RotationState{
		baseline: NewQuaternionIdentity(),
		current:  NewQuaternionIdentity(),
	}
}

// Begin starts a gesture anchored at the given unit direction, using the given screen sphere until it ends.
func (state *RotationState) Begin(anchor Vector, sphere ScreenSphere) {
	state.current = state.baseline
	state.session = &rotationSession{
		anchor:   anchor,
		sphere:   sphere,
		baseline: state.baseline,
	}
}

// Active returns true while a gesture is in progress.
func (state *RotationState) Active() bool {
	return state.session != nil
}

// Sphere returns the screen sphere locked in by the active gesture.
func (state *RotationState) Sphere() (ScreenSphere, bool) {
	if state.session == nil {
		return ScreenSphere{}, false
	}
	return state.session.sphere, true
}

// Update computes the gesture's rotation for a new unit direction on the sphere and returns it.
// The increment rotates the anchor direction onto the new one by twice the angle between them,
// and is applied on the left of the baseline: current = increment * baseline.
func (state *RotationState) Update(direction Vector) Quaternion {

	if state.session == nil {
		return state.baseline
	}

	increment := NewAxisAngleBetween(state.session.anchor, direction).Scaled(2).ToQuaternion()

	state.current = increment.Mult(state.session.baseline).Unit()

	return state.current

}

// Commit ends the active gesture, making its rotation the new baseline. Committing with no gesture active does nothing.
func (state *RotationState) Commit() {
	if state.session == nil {
		return
	}
	state.baseline = state.current
	state.session = nil
}

// Baseline returns the committed rotation.
func (state *RotationState) Baseline() Quaternion {
	return state.baseline
}

// Current returns the rotation of the active gesture, or the baseline if there's none.
func (state *RotationState) Current() Quaternion {
	if state.session == nil {
		return state.baseline
	}
	return state.current
}

// SetBaseline replaces the committed rotation. Any active gesture is dropped without committing.
func (state *RotationState) SetBaseline(rotation Quaternion) {
	state.baseline = rotation.Unit()
	state.current = state.baseline
	state.session = nil
}
