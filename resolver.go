package arcball

import "math"

// SphereResolver decides which sphere an arcball gesture rotates around. Either value can be
// set explicitly; whatever is left unset (a nil Center, or a Radius of 0) is computed from the
// aggregate bounding sphere of the scene's objects.
type SphereResolver struct {
	Center *Vector // Explicit sphere center in local scene space; nil to compute it.
	Radius float64 // Explicit sphere radius; 0 to compute it.
}

// NewSphereResolver returns a SphereResolver using the given explicit center and radius.
func NewSphereResolver(center *Vector, radius float64) SphereResolver {
	return SphereResolver{Center: center, Radius: radius}
}

// Resolve returns the active sphere for the given objects. When both an explicit center and
// radius are set, they're returned verbatim and the objects aren't looked at. Otherwise the
// aggregate sphere is computed and then either explicit value replaces its computed
// counterpart.
//
// The returned bool is false if the result is degenerate (no geometry contributed and nothing
// explicit filled the gap); callers shouldn't start a drag on such a sphere.
func (resolver SphereResolver) Resolve(objects []SceneObject) (BoundingSphere, bool) {

	if resolver.Center != nil && resolver.Radius != 0 {
		sphere := BoundingSphere{Center: *resolver.Center, Radius: resolver.Radius}
		return sphere, !sphere.IsDegenerate()
	}

	sphere, _ := ComputeAggregateSphere(objects)

	if resolver.Center != nil {
		sphere.Center = *resolver.Center
	}

	if resolver.Radius != 0 {
		sphere.Radius = resolver.Radius
	}

	return sphere, !sphere.IsDegenerate()

}

// ProjectToScreen projects a local-space sphere into screen space using the given projector.
// The screen radius is the horizontal distance between the projected center and the projection
// of a point offset from the center by the radius along local X. This is an approximation that
// holds while the projection's horizontal scale near the center is representative.
func ProjectToScreen(sphere BoundingSphere, projector ScreenProjector) ScreenSphere {

	center := projector.LocalToScreen(sphere.Center)
	probe := projector.LocalToScreen(sphere.Center.Sub(NewVector(sphere.Radius, 0, 0)))

	return ScreenSphere{
		Center: center,
		Radius: math.Abs(probe.X - center.X),
	}

}
