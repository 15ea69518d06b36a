package arcball

// EulerAngles is a rotation expressed as three successive rotations (in radians) around the
// X, Y, and Z axes, in that fixed order. This is the form rotation sinks receive.
type EulerAngles struct {
	X, Y, Z float64
}

// NewEulerAngles returns a new set of XYZ Euler angles.
func NewEulerAngles(x, y, z float64) EulerAngles {
	return EulerAngles{X: x, Y: y, Z: z}
}

// ToQuaternion converts the Euler angles into a Quaternion.
func (euler EulerAngles) ToQuaternion() Quaternion {
	return NewQuaternionFromEuler(euler)
}

// ToDegrees returns a copy of the Euler angles converted to degrees, for human readability.
func (euler EulerAngles) ToDegrees() EulerAngles {
	return EulerAngles{ToDegrees(euler.X), ToDegrees(euler.Y), ToDegrees(euler.Z)}
}
