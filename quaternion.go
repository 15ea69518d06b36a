package arcball

import "math"

// Quaternion represents a rotation as a unit quaternion, with W being the scalar part.
// Composition is done with Mult(); the result should be passed through Unit() after repeated
// composition to counter floating-point drift.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion out of the given components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns a Quaternion that represents no rotation.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// NewQuaternionFromAxisAngle creates a Quaternion rotating by angle radians around the given axis.
// The axis is normalized first; a zero axis gives the identity rotation.
func NewQuaternionFromAxisAngle(axis Vector, angle float64) Quaternion {
	if axis.IsZero() {
		return NewQuaternionIdentity()
	}
	axis = axis.Unit()
	s := math.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(angle / 2),
	}
}

// NewQuaternionFromEuler creates a Quaternion out of XYZ-ordered Euler angles (in radians).
func NewQuaternionFromEuler(euler EulerAngles) Quaternion {

	c1, s1 := math.Cos(euler.X/2), math.Sin(euler.X/2)
	c2, s2 := math.Cos(euler.Y/2), math.Sin(euler.Y/2)
	c3, s3 := math.Cos(euler.Z/2), math.Sin(euler.Z/2)

	return Quaternion{
		X: s1*c2*c3 + c1*s2*s3,
		Y: c1*s2*c3 - s1*c2*s3,
		Z: c1*c2*s3 + s1*s2*c3,
		W: c1*c2*c3 - s1*s2*s3,
	}

}

// Mult returns quat * other. Applied to a vector, other's rotation happens first, then quat's.
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.X*other.W + quat.W*other.X + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.Y*other.W + quat.W*other.Y + quat.Z*other.X - quat.X*other.Z,
		Z: quat.Z*other.W + quat.W*other.Z + quat.X*other.Y - quat.Y*other.X,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.Dot(quat))
}

// Unit returns a normalized copy of the Quaternion. A Quaternion with (almost) no length or
// with non-finite components can't represent a rotation, so the identity is returned instead.
func (quat Quaternion) Unit() Quaternion {
	l := quat.Magnitude()
	if l < 1e-8 || !isFinite(l) {
		return NewQuaternionIdentity()
	}
	return Quaternion{quat.X / l, quat.Y / l, quat.Z / l, quat.W / l}
}

// Conjugate returns the inverse rotation of a unit Quaternion.
func (quat Quaternion) Conjugate() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, quat.W}
}

// Dot returns the dot product of the two Quaternions.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Equivalent returns true if both Quaternions represent the same rotation (q and -q are considered equal).
func (quat Quaternion) Equivalent(other Quaternion, epsilon float64) bool {
	return 1-math.Abs(quat.Unit().Dot(other.Unit())) <= epsilon
}

// RotateVector rotates the given Vector by the Quaternion, returning a rotated copy of it.
func (quat Quaternion) RotateVector(vec Vector) Vector {
	u := Vector{quat.X, quat.Y, quat.Z}
	t := u.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(u.Cross(t))
}

// ToAxisAngle returns the AxisAngle representation of the Quaternion.
func (quat Quaternion) ToAxisAngle() AxisAngle {
	quat = quat.Unit()
	if quat.W < 0 {
		quat = Quaternion{-quat.X, -quat.Y, -quat.Z, -quat.W}
	}
	angle := 2 * math.Acos(clamp(quat.W, -1, 1))
	s := math.Sqrt(1 - quat.W*quat.W)
	if s < 1e-8 {
		return AxisAngle{Axis: VecX, Angle: 0}
	}
	return AxisAngle{Axis: Vector{quat.X / s, quat.Y / s, quat.Z / s}, Angle: angle}
}

// ToEuler converts the Quaternion into Euler angles in XYZ order.
func (quat Quaternion) ToEuler() EulerAngles {

	q := quat.Unit()

	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	// Rotation matrix elements, row-major (m12 is row 1, column 2).
	m11 := 1 - (yy + zz)
	m12 := xy - wz
	m13 := xz + wy
	m22 := 1 - (xx + zz)
	m23 := yz - wx
	m32 := yz + wx
	m33 := 1 - (xx + yy)

	euler := EulerAngles{}
	euler.Y = math.Asin(clamp(m13, -1, 1))

	if math.Abs(m13) < 0.9999999 {
		euler.X = math.Atan2(-m23, m33)
		euler.Z = math.Atan2(-m12, m11)
	} else {
		euler.X = math.Atan2(m32, m22)
		euler.Z = 0
	}

	return euler

}

// Slerp spherically interpolates between the calling Quaternion and the other one, taking the shorter path.
func (quat Quaternion) Slerp(other Quaternion, percent float64) Quaternion {

	if percent <= 0 {
		return quat
	} else if percent >= 1 {
		return other
	}

	angle := quat.Dot(other)

	if angle < 0 {
		other = Quaternion{-other.X, -other.Y, -other.Z, -other.W}
		angle = -angle
	}

	if angle >= 1-1e-6 {
		// Close enough that a linear blend is indistinguishable and avoids dividing by ~0
		return Quaternion{
			X: quat.X + (other.X-quat.X)*percent,
			Y: quat.Y + (other.Y-quat.Y)*percent,
			Z: quat.Z + (other.Z-quat.Z)*percent,
			W: quat.W + (other.W-quat.W)*percent,
		}.Unit()
	}

	sinHalfTheta := math.Sqrt(1 - angle*angle)
	halfTheta := math.Atan2(sinHalfTheta, angle)

	ratioA := math.Sin((1-percent)*halfTheta) / sinHalfTheta
	ratioB := math.Sin(percent*halfTheta) / sinHalfTheta

	return Quaternion{
		X: quat.X*ratioA + other.X*ratioB,
		Y: quat.Y*ratioA + other.Y*ratioB,
		Z: quat.Z*ratioA + other.Z*ratioB,
		W: quat.W*ratioA + other.W*ratioB,
	}

}
