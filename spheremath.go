package arcball

import "math"

// ComputeAggregateSphere returns a sphere enclosing the bounding spheres of all of the given
// objects that carry geometry. Each object's sphere center is placed at position*scale +
// bounds.Center*scale (component-wise), the aggregate center is the average of those centers,
// and the radius is the largest distance from the aggregate center to an object's center plus
// that object's radius, scaled by its largest scale axis.
//
// The result is guaranteed to contain every object's sphere, but it isn't a minimal
// enclosing sphere. If no object has geometry, the zero BoundingSphere and false are returned.
func ComputeAggregateSphere(objects []SceneObject) (BoundingSphere, bool) {

	centers := make([]Vector, 0, len(objects))
	radii := make([]float64, 0, len(objects))

	sum := NewVectorZero()

	for _, obj := range objects {

		if obj.Bounds == nil {
			continue
		}

		contributed := objectSphere(obj)

		centers = append(centers, contributed.Center)
		radii = append(radii, contributed.Radius)
		sum = sum.Add(contributed.Center)

	}

	if len(centers) == 0 {
		return BoundingSphere{}, false
	}

	sphere := BoundingSphere{Center: sum.Divide(float64(len(centers)))}

	for i, center := range centers {
		radius := center.Distance(sphere.Center) + radii[i]
		if radius > sphere.Radius {
			sphere.Radius = radius
		}
	}

	return sphere, true

}

// objectSphere returns the sphere an object contributes to the aggregate: its bounds placed at
// position*scale + bounds.Center*scale, with the radius scaled by the largest scale axis.
func objectSphere(obj SceneObject) BoundingSphere {
	return BoundingSphere{
		Center: obj.Position.MultComp(obj.Scale).Add(obj.Bounds.Center.MultComp(obj.Scale)),
		Radius: obj.Bounds.WorldRadius(obj.Scale),
	}
}

// ProjectPointerOntoSphere maps a screen position onto the arcball sphere, returning a unit
// direction from the sphere's center.
//
// A pointer inside the sphere's screen disk lands on the near hemisphere; one outside of it
// is pulled in to the disk's rim and lands on the sphere's equator (Z = 0). Positions that
// can't be placed (a degenerate sphere, or a zero-length result) map to VecZ.
func ProjectPointerOntoSphere(pointer ScreenPoint, sphere ScreenSphere) Vector {

	if sphere.IsDegenerate() {
		return VecZ
	}

	d := pointer.Sub(sphere.Center)
	dx, dy, dz := d.X, d.Y, 0.0

	// Hypot instead of dx*dx+dy*dy so pointers far off-screen don't overflow.
	length := math.Hypot(dx, dy)

	if length < sphere.Radius {
		dz = math.Sqrt((sphere.Radius - length) * (sphere.Radius + length))
	} else {
		scaleIn := sphere.Radius / length
		dx *= scaleIn
		dy *= scaleIn
	}

	return NewVector(dx, dy, dz).UnitOr(VecZ)

}
