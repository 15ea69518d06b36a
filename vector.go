package arcball

import (
	"math"
)

// VecX represents a unit vector in the global direction of VecX on the right-handed coordinate system (right).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector in the global direction of VecY on the right-handed coordinate system (upwards).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector in the global direction of VecZ on the right-handed coordinate system (backwards, towards you).
// It's also the direction returned for a pointer that can't be placed on the arcball sphere.
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector, used for positions, scales, sphere centers and directions.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector and the other one.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between the two Vectors.
func (vec Vector) DistanceSquared(other Vector) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// MultComp multiplies the Vector component-wise by the other Vector (for example, a position by a non-uniform scale).
func (vec Vector) MultComp(other Vector) Vector {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// MaxComponent returns the largest of the X, Y and Z components.
func (vec Vector) MaxComponent() float64 {
	return math.Max(vec.X, math.Max(vec.Y, vec.Z))
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero-length Vector is returned unmodified.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// UnitOr normalizes the Vector like Unit(), but returns fallback instead if the Vector has no usable length.
func (vec Vector) UnitOr(fallback Vector) Vector {
	l := vec.Magnitude()
	if l < 1e-8 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Set sets the values in the Vector to the x, y, and z values provided.
func (vec Vector) Set(x, y, z float64) Vector {
	vec.X = x
	vec.Y = y
	vec.Z = z
	return vec
}

// Floats returns a [3]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {

	eps := 1e-8

	if math.Abs(vec.X) > eps || math.Abs(vec.Y) > eps || math.Abs(vec.Z) > eps {
		return false
	}

	return true

}

// Angle returns the angle between the calling Vector and the provided other Vector.
// The dot product is clamped so that nearly-parallel unit vectors don't produce NaN.
func (vec Vector) Angle(other Vector) float64 {
	return math.Acos(clamp(vec.Unit().Dot(other.Unit()), -1, 1))
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// ScreenPoint is a 2D position in screen (page) space, with Y growing downwards.
type ScreenPoint struct {
	X, Y float64
}

// NewScreenPoint returns a new ScreenPoint.
func NewScreenPoint(x, y float64) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

// Sub returns the offset from other to the calling point.
func (p ScreenPoint) Sub(other ScreenPoint) ScreenPoint {
	return ScreenPoint{X: p.X - other.X, Y: p.Y - other.Y}
}
