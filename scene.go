package arcball

// SceneObject is the read-only geometric description of one scene object, as the arcball sees it.
// Bounds is nil for objects without geometry; those are skipped when computing the arcball sphere.
type SceneObject struct {
	Name     string
	Position Vector
	Scale    Vector
	Bounds   *BoundingSphere
}

// Scene is a Node hierarchy viewed through a Camera. The Root Node is the orientation holder an arcball
// Controller rotates; the objects it reports are expressed in the Root's unrotated local space.
type Scene struct {
	Name      string
	Root      *Node
	Projector ScreenProjector
}

// NewScene returns a new, empty Scene using the given projector to reach screen space.
func NewScene(name string, projector ScreenProjector) *Scene {
	return &Scene{
		Name:      name,
		Root:      NewNode("Root"),
		Projector: projector,
	}
}

// AddNodes parents the given Nodes to the Scene's Root.
func (scene *Scene) AddNodes(nodes ...*Node) {
	scene.Root.AddChildren(nodes...)
}

// FindNode returns the first Node in the Scene with the given name, or nil if there's none.
func (scene *Scene) FindNode(name string) *Node {
	for _, node := range scene.Root.ChildrenRecursive() {
		if node.Name() == name {
			return node
		}
	}
	return nil
}

// Objects returns a SceneObject for every Node under the Root, with position and scale accumulated through the
// hierarchy, relative to the Root. The Root's own transform isn't included.
func (scene *Scene) Objects() []SceneObject {

	objects := []SceneObject{}

	var walk func(node *Node, position, scale Vector, rotation Quaternion)

	walk = func(node *Node, position, scale Vector, rotation Quaternion) {
		for _, child := range node.children {
			childPos := position.Add(rotation.RotateVector(child.position.MultComp(scale)))
			childScale := scale.MultComp(child.scale)
			childRot := rotation.Mult(child.rotation).Unit()
			objects = append(objects, SceneObject{
				Name:     child.name,
				Position: childPos,
				Scale:    childScale,
				Bounds:   child.bounds,
			})
			walk(child, childPos, childScale, childRot)
		}
	}

	walk(scene.Root, NewVectorZero(), Vector{1, 1, 1}, NewQuaternionIdentity())

	return objects

}

// HasGeometry returns true if any object in the Scene has a bounding sphere.
func (scene *Scene) HasGeometry() bool {
	for _, obj := range scene.Objects() {
		if obj.Bounds != nil {
			return true
		}
	}
	return false
}

// LocalToScreen transforms a point from the Root's local space to the screen. The Root's position and scale are
// applied, but not its rotation; the arcball sphere stays put while the content turns inside of it.
func (scene *Scene) LocalToScreen(point Vector) ScreenPoint {
	world := scene.Root.position.Add(point.MultComp(scene.Root.scale))
	return scene.Projector.LocalToScreen(world)
}

// WorldToScreen transforms a world-space point (one that already includes the Root's rotation) to the screen.
func (scene *Scene) WorldToScreen(point Vector) ScreenPoint {
	return scene.Projector.LocalToScreen(point)
}
