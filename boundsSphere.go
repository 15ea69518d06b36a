package arcball

import "math"

// BoundingSphere represents a 3D sphere in local scene space.
// The zero value (no center offset, no radius) is the degenerate "no sphere" result.
type BoundingSphere struct {
	Center Vector
	Radius float64
}

// NewBoundingSphere returns a new BoundingSphere.
func NewBoundingSphere(center Vector, radius float64) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// IsDegenerate returns true if the sphere has no usable radius, and so can't drive an arcball.
func (sphere BoundingSphere) IsDegenerate() bool {
	return !(sphere.Radius > 0) || !isFinite(sphere.Radius)
}

// PointInside returns whether the given point is inside of the sphere or not.
func (sphere BoundingSphere) PointInside(point Vector) bool {
	return sphere.Center.Distance(point) < sphere.Radius
}

// ContainsSphere returns whether the other sphere lies entirely within this one, with epsilon
// giving some slack for floating-point error.
func (sphere BoundingSphere) ContainsSphere(other BoundingSphere, epsilon float64) bool {
	return sphere.Center.Distance(other.Center)+other.Radius <= sphere.Radius+epsilon
}

// WorldRadius returns the radius of the BoundingSphere after scaling it by the given (possibly
// non-uniform) scale. The largest scale axis is used, so the result is conservative.
func (sphere BoundingSphere) WorldRadius(scale Vector) float64 {
	maxScale := math.Max(math.Max(math.Abs(scale.X), math.Abs(scale.Y)), math.Abs(scale.Z))
	return sphere.Radius * maxScale
}

// ScreenSphere is a BoundingSphere after projection into 2D screen (page) coordinates.
type ScreenSphere struct {
	Center ScreenPoint
	Radius float64
}

// IsDegenerate returns true if the projected sphere has no usable radius.
func (sphere ScreenSphere) IsDegenerate() bool {
	return !(sphere.Radius > 0) || !isFinite(sphere.Radius)
}
