package arcball

// Overlay is a screen-space picture of an arcball and the scene it turns, ready to be drawn by a front end.
type Overlay struct {
	Sphere    ScreenSphere   // The arcball sphere (the locked one while dragging)
	HasSphere bool           // False if there's no usable sphere to draw
	Dragging  bool           // Whether a gesture is in progress
	Objects   []ScreenSphere // Each object's sphere as the arcball sphere is fitted to it, rotated with the scene
	Axes      [3]ScreenPoint // Tips of the rotated X, Y, and Z axes, drawn out from the sphere's center
	Rotation  EulerAngles    // The controller's current rotation
}

// RootToWorld transforms a point in the Root's local space to world space, applying the Root's full transform
// (including its rotation).
func (scene *Scene) RootToWorld(point Vector) Vector {
	root := scene.Root
	return root.position.Add(root.rotation.RotateVector(point.MultComp(root.scale)))
}

// NewOverlay builds the Overlay for the given scene and controller as they are right now.
func NewOverlay(scene *Scene, controller *Controller) Overlay {

	overlay := Overlay{
		Rotation: controller.Rotation().ToEuler(),
	}

	sphere, dragging := controller.ActiveSphere()
	overlay.Dragging = dragging

	local, ok := controller.Sphere()

	if dragging {
		overlay.Sphere = sphere
		overlay.HasSphere = true
	} else if ok {
		overlay.Sphere = ProjectToScreen(local, scene)
		overlay.HasSphere = !overlay.Sphere.IsDegenerate()
	}

	for _, obj := range scene.Objects() {
		if obj.Bounds == nil {
			continue
		}
		contributed := objectSphere(obj)
		world := BoundingSphere{Center: scene.RootToWorld(contributed.Center), Radius: contributed.Radius * scene.Root.scale.MaxComponent()}
		overlay.Objects = append(overlay.Objects, ProjectToScreen(world, scene.Projector))
	}

	if ok {
		rotation := controller.Rotation()
		for i, axis := range []Vector{VecX, VecY, VecZ} {
			tip := local.Center.Add(rotation.RotateVector(axis).Scale(local.Radius))
			overlay.Axes[i] = scene.LocalToScreen(tip)
		}
	}

	return overlay

}
