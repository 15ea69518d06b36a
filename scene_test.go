package arcball

import (
	"math"
	"strings"
	"testing"
)

func TestNodeHierarchy(t *testing.T) {

	root := NewNode("Root")
	arm := NewNode("Arm")
	hand := NewNode("Hand")

	root.AddChildren(arm)
	arm.AddChildren(hand)

	if root.Get("Arm/Hand") != hand {
		t.Error("expected to find Arm/Hand")
	}
	if root.Get("Arm/Foot") != nil {
		t.Error("expected no Arm/Foot")
	}
	if len(root.ChildrenRecursive()) != 2 {
		t.Errorf("expected 2 descendants, got %d", len(root.ChildrenRecursive()))
	}

	arm.SetLocalPosition(1, 0, 0)
	arm.SetLocalScale(2, 2, 2)
	arm.SetLocalRotation(NewQuaternionFromAxisAngle(VecZ, math.Pi/2))
	hand.SetLocalPosition(1, 0, 0)

	// Hand sits 2 units (scaled) along Arm's rotated X, which points up.
	expectVector(t, hand.WorldPosition(), NewVector(1, 2, 0), 1e-9)
	expectVector(t, hand.WorldScale(), NewVector(2, 2, 2), 0)

	root.AddChildren(hand)
	if hand.Parent() != root || len(arm.Children()) != 0 {
		t.Error("expected Hand to move from Arm to Root")
	}

	hand.Unparent()
	if hand.Parent() != nil || len(root.Children()) != 1 {
		t.Error("expected Hand to be unparented")
	}

	if !strings.Contains(root.HierarchyAsString(), "Arm") {
		t.Errorf("unexpected hierarchy %q", root.HierarchyAsString())
	}

}

func TestNodeClone(t *testing.T) {

	node := NewNode("Original")
	node.SetBounds(&BoundingSphere{Radius: 2})
	node.AddChildren(NewNode("Kid"))

	clone := node.Clone()

	if clone.ID() == node.ID() {
		t.Error("expected a new ID")
	}
	if len(clone.Children()) != 1 || clone.Children()[0] == node.Children()[0] {
		t.Error("expected children to be cloned")
	}

	clone.Bounds().Radius = 5
	if node.Bounds().Radius != 2 {
		t.Error("expected the bounds to be copied")
	}

}

func TestNodeAsRotationSink(t *testing.T) {

	scene := NewScene("Test", flatProjector{origin: ScreenPoint{100, 100}, pixelsPerUnit: 50})
	cube := NewNode("Cube")
	cube.SetBounds(&BoundingSphere{Radius: 1})
	scene.AddNodes(cube)

	controller := NewController(scene, scene.Root, Options{})

	controller.OnPress(ScreenPoint{100, 100})
	controller.OnMove(ScreenPoint{150, 100})
	controller.OnRelease()

	expectRotation(t, scene.Root.LocalRotation(), NewQuaternionFromAxisAngle(VecY, math.Pi), 1e-9)

	// The Root's rotation doesn't move the sphere.
	sphere, ok := controller.Sphere()
	if !ok {
		t.Fatal("expected a usable sphere")
	}
	expectVector(t, sphere.Center, NewVectorZero(), 0)

	// Rotating the Root turns the content.
	expectVector(t, cube.WorldRotation().RotateVector(VecX), VecX.Invert(), 1e-9)

}

func TestSceneObjects(t *testing.T) {

	scene := NewScene("Test", flatProjector{pixelsPerUnit: 1})
	scene.Root.SetLocalPosition(50, 0, 0)
	scene.Root.SetLocalScale(10, 10, 10)

	parent := NewNode("Parent")
	parent.SetLocalPosition(1, 0, 0)
	parent.SetLocalScale(2, 2, 2)

	child := NewNode("Child")
	child.SetLocalPosition(0, 1, 0)
	child.SetBounds(&BoundingSphere{Radius: 1})

	parent.AddChildren(child)
	scene.AddNodes(parent)

	objects := scene.Objects()
	if len(objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objects))
	}

	// The Root's own transform stays out of it.
	expectVector(t, objects[0].Position, NewVector(1, 0, 0), 0)
	expectVector(t, objects[1].Position, NewVector(1, 2, 0), 0)
	expectVector(t, objects[1].Scale, NewVector(2, 2, 2), 0)

	if !scene.HasGeometry() {
		t.Error("expected geometry")
	}
	if scene.FindNode("Child") != child {
		t.Error("expected to find Child")
	}

	// The Root's position and scale carry into screen space.
	if p := scene.LocalToScreen(NewVector(1, 0, 0)); p != (ScreenPoint{60, 0}) {
		t.Errorf("unexpected screen point %v", p)
	}

}

func TestNewOverlay(t *testing.T) {

	scene := NewScene("Test", flatProjector{origin: ScreenPoint{100, 100}, pixelsPerUnit: 50})
	cube := NewNode("Cube")
	cube.SetBounds(&BoundingSphere{Radius: 1})
	scene.AddNodes(cube)

	controller := NewController(scene, scene.Root, Options{})

	overlay := NewOverlay(scene, controller)

	if !overlay.HasSphere || overlay.Dragging {
		t.Fatalf("unexpected overlay %+v", overlay)
	}
	if overlay.Sphere.Center != (ScreenPoint{100, 100}) || overlay.Sphere.Radius != 50 {
		t.Errorf("unexpected sphere %+v", overlay.Sphere)
	}
	if len(overlay.Objects) != 1 || overlay.Objects[0].Radius != 50 {
		t.Errorf("unexpected objects %+v", overlay.Objects)
	}
	if overlay.Axes[0] != (ScreenPoint{150, 100}) {
		t.Errorf("unexpected X axis tip %v", overlay.Axes[0])
	}

	controller.OnPress(ScreenPoint{100, 100})
	controller.OnMove(ScreenPoint{150, 100})

	overlay = NewOverlay(scene, controller)

	if !overlay.Dragging {
		t.Error("expected a dragging overlay")
	}
	// Half a turn around Y flips X.
	if !nearly(overlay.Axes[0].X, 50, 1e-9) {
		t.Errorf("unexpected X axis tip %v", overlay.Axes[0])
	}

}

func TestNewOverlayWithoutGeometry(t *testing.T) {

	scene := NewScene("Empty", flatProjector{pixelsPerUnit: 1})
	overlay := NewOverlay(scene, NewController(scene, nil, Options{}))

	if overlay.HasSphere || len(overlay.Objects) != 0 {
		t.Errorf("expected an empty overlay, got %+v", overlay)
	}

}

func TestNodeRotateAndRename(t *testing.T) {

	node := NewNode("Before")
	node.SetName("After")
	if node.Name() != "After" {
		t.Errorf("expected After, got %q", node.Name())
	}

	node.Rotate(0, 0, 1, math.Pi/2)
	node.Rotate(0, 0, 0, 1) // No axis, no rotation
	expectVector(t, node.LocalRotation().RotateVector(VecX), VecY, 1e-9)

	// Rotations stack on top of each other.
	node.Rotate(0, 0, 1, math.Pi/2)
	expectVector(t, node.LocalRotation().RotateVector(VecX), VecX.Invert(), 1e-9)

}

func TestSceneWorldToScreen(t *testing.T) {

	scene := NewScene("Test", flatProjector{pixelsPerUnit: 1})
	scene.Root.SetLocalPosition(50, 0, 0)

	// World points skip the Root's transform; local ones don't.
	if p := scene.WorldToScreen(NewVector(1, 2, 0)); p != (ScreenPoint{1, 2}) {
		t.Errorf("unexpected world point %v", p)
	}
	if p := scene.LocalToScreen(NewVector(1, 2, 0)); p != (ScreenPoint{51, 2}) {
		t.Errorf("unexpected local point %v", p)
	}

}

func TestNewOverlayMatchesArcballSphere(t *testing.T) {

	scene := NewScene("Test", flatProjector{origin: ScreenPoint{100, 100}, pixelsPerUnit: 50})
	moon := NewNode("Moon")
	moon.SetLocalPosition(1, 0, 0)
	moon.SetLocalScale(2, 2, 2)
	moon.SetBounds(&BoundingSphere{Radius: 1})
	scene.AddNodes(moon)

	controller := NewController(scene, scene.Root, Options{})

	overlay := NewOverlay(scene, controller)

	// A single object's ring is the arcball sphere itself.
	if len(overlay.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(overlay.Objects))
	}
	if overlay.Objects[0] != overlay.Sphere {
		t.Errorf("expected the object ring %+v to match the arcball sphere %+v", overlay.Objects[0], overlay.Sphere)
	}
	if overlay.Sphere.Center != (ScreenPoint{200, 100}) || overlay.Sphere.Radius != 100 {
		t.Errorf("unexpected sphere %+v", overlay.Sphere)
	}

}
