package arcball

import "math"

// AxisAngle represents a rotation in radians around a given 3D axis. This being the case, an AxisAngle can easily also be stored in a 4-dimensional vector; it's separated
// here into a 3D Vector and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector  // 3 dimensional axis for rotating
	Angle float64 // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation.
func NewAxisAngle(axis Vector, angle float64) AxisAngle {
	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// NewAxisAngleBetween returns the rotation that carries direction from onto direction to.
// The angle's cosine is clamped to [-1, 1] before taking acos. If the directions are parallel
// (or antiparallel) the cross product has no usable length, and a zero rotation is returned.
func NewAxisAngleBetween(from, to Vector) AxisAngle {

	axis := from.Cross(to)

	if axis.Magnitude() < 1e-12 {
		return AxisAngle{Axis: VecZ, Angle: 0}
	}

	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: math.Acos(clamp(from.Dot(to), -1, 1)),
	}

}

// IsZero returns true if the AxisAngle doesn't rotate anything.
func (aa AxisAngle) IsZero() bool {
	return aa.Angle == 0 || aa.Axis.IsZero()
}

// Scaled returns a copy of the AxisAngle with the angle multiplied by the given factor.
func (aa AxisAngle) Scaled(factor float64) AxisAngle {
	aa.Angle *= factor
	return aa
}

// ToQuaternion returns the Quaternion representing the AxisAngle.
func (aa AxisAngle) ToQuaternion() Quaternion {
	if aa.IsZero() {
		return NewQuaternionIdentity()
	}
	return NewQuaternionFromAxisAngle(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 1, 0] (+Y, or "Up") and an Angle of pi / 2, axisAngle.RotateVector(Vector{1, 0, 0}) would return Vector{0, 0, -1}.
func (aa AxisAngle) RotateVector(vec Vector) Vector {
	return aa.ToQuaternion().RotateVector(vec)
}
