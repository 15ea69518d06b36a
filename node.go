package arcball

import "strings"

var nodeID uint64 = 0

// Node is an orientation holder in a scene hierarchy: a named position, scale, and rotation relative to its parent,
// optionally carrying a BoundingSphere if it has geometry. Node implements RotationSink, so an arcball Controller
// can write its rotation straight into one.
type Node struct {
	id       uint64 // Unique ID for this node
	name     string
	position Vector
	scale    Vector
	rotation Quaternion
	bounds   *BoundingSphere // nil if the Node has no geometry
	data     interface{}     // A place to store a pointer to something if you need it
	children []*Node
	parent   *Node
}

// NewNode returns a new Node.
func NewNode(name string) *Node {

	node := &Node{
		id:       nodeID,
		name:     name,
		scale:    Vector{1, 1, 1},
		rotation: NewQuaternionIdentity(),
		children: []*Node{},
	}

	nodeID++

	return node
}

// ID returns the object's unique ID.
func (node *Node) ID() uint64 {
	return node.id
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the object's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// SetData sets user-customizeable data that could be usefully stored on this node.
func (node *Node) SetData(data interface{}) {
	node.data = data
}

// Data returns a pointer to user-customizeable data that could be usefully stored on this node.
func (node *Node) Data() interface{} {
	return node.data
}

// Clone returns a deep copy of the Node and its children. The clone has no parent.
func (node *Node) Clone() *Node {
	newNode := NewNode(node.name)
	newNode.position = node.position
	newNode.scale = node.scale
	newNode.rotation = node.rotation
	newNode.data = node.data
	if node.bounds != nil {
		b := *node.bounds
		newNode.bounds = &b
	}
	for _, child := range node.children {
		newNode.AddChildren(child.Clone())
	}
	return newNode
}

// LocalPosition returns the object's local position (position relative to its parent).
func (node *Node) LocalPosition() Vector {
	return node.position
}

// SetLocalPosition sets the object's local position (position relative to its parent).
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.position = Vector{x, y, z}
}

// SetLocalPositionVec sets the object's local position using a Vector.
func (node *Node) SetLocalPositionVec(position Vector) {
	node.position = position
}

// LocalScale returns the object's local scale.
func (node *Node) LocalScale() Vector {
	return node.scale
}

// SetLocalScale sets the object's local scale.
func (node *Node) SetLocalScale(w, h, d float64) {
	node.scale = Vector{w, h, d}
}

// SetLocalScaleVec sets the object's local scale using a Vector.
func (node *Node) SetLocalScaleVec(scale Vector) {
	node.scale = scale
}

// LocalRotation returns the object's local rotation.
func (node *Node) LocalRotation() Quaternion {
	return node.rotation
}

// SetLocalRotation sets the object's local rotation (relative to any parent).
func (node *Node) SetLocalRotation(rotation Quaternion) {
	node.rotation = rotation.Unit()
}

// SetRotation sets the object's local rotation from XYZ Euler angles in radians.
func (node *Node) SetRotation(x, y, z float64) {
	node.SetLocalRotation(NewQuaternionFromEuler(EulerAngles{x, y, z}))
}

// Rotate rotates the Node around the given axis by the angle provided in radians, on top of its current rotation.
func (node *Node) Rotate(x, y, z, angle float64) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	node.SetLocalRotation(NewQuaternionFromAxisAngle(Vector{x, y, z}, angle).Mult(node.rotation))
}

// Bounds returns the Node's bounding sphere in its own local space, or nil if the Node has no geometry.
func (node *Node) Bounds() *BoundingSphere {
	return node.bounds
}

// SetBounds sets the Node's bounding sphere. Passing nil marks the Node as having no geometry.
func (node *Node) SetBounds(bounds *BoundingSphere) {
	node.bounds = bounds
}

// WorldPosition returns the object's position relative to the world origin, taking all parents into account.
func (node *Node) WorldPosition() Vector {
	if node.parent == nil {
		return node.position
	}
	parent := node.parent
	return parent.WorldPosition().Add(parent.WorldRotation().RotateVector(node.position.MultComp(parent.WorldScale())))
}

// WorldScale returns the object's scale multiplied by all of its parents' scales.
func (node *Node) WorldScale() Vector {
	if node.parent == nil {
		return node.scale
	}
	return node.parent.WorldScale().MultComp(node.scale)
}

// WorldRotation returns the object's absolute rotation.
func (node *Node) WorldRotation() Quaternion {
	if node.parent == nil {
		return node.rotation
	}
	return node.parent.WorldRotation().Mult(node.rotation).Unit()
}

// Parent returns the Node's parent. If the Node has no parent, this will return nil.
func (node *Node) Parent() *Node {
	return node.parent
}

// AddChildren parents the provided children Nodes to the Node. If the children are already parented to other Nodes,
// they are unparented before doing so.
func (node *Node) AddChildren(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChildren(child)
		}
		child.parent = node
		node.children = append(node.children, child)
	}
}

// RemoveChildren removes the provided children from this object.
func (node *Node) RemoveChildren(children ...*Node) {
	for _, child := range children {
		for i, c := range node.children {
			if c == child {
				child.parent = nil
				node.children = append(node.children[:i], node.children[i+1:]...)
				break
			}
		}
	}
}

// Unparent unparents the Node from its parent, removing it from the scenegraph.
func (node *Node) Unparent() {
	if node.parent != nil {
		node.parent.RemoveChildren(node)
	}
}

// Children returns the Node's direct children.
func (node *Node) Children() []*Node {
	return append([]*Node(nil), node.children...)
}

// ChildrenRecursive returns all of the Node's descendants, depth-first.
func (node *Node) ChildrenRecursive() []*Node {
	out := []*Node{}
	for _, child := range node.children {
		out = append(out, child)
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

// Get searches the Node's descendants for a Node by path, like "Arm/Hand".
func (node *Node) Get(path string) *Node {
	current := node
	for _, name := range strings.Split(path, "/") {
		var found *Node
		for _, child := range current.children {
			if child.name == name {
				found = child
				break
			}
		}
		if found == nil {
			return nil
		}
		current = found
	}
	return current
}

// HierarchyAsString returns a string displaying the hierarchy of the Node and its children.
func (node *Node) HierarchyAsString() string {
	var printNode func(n *Node, level int) string
	printNode = func(n *Node, level int) string {
		str := strings.Repeat("    ", level)
		if level > 0 {
			str += "\\-: "
		}
		str += n.name
		if n.bounds != nil {
			str += " (geometry)"
		}
		str += "\n"
		for _, child := range n.children {
			str += printNode(child, level+1)
		}
		return str
	}
	return printNode(node, 0)
}
