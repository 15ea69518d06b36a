package arcball

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFFile loads a .gltf or .glb file from the filepath given into a Scene, with each glTF node becoming a Node.
// Nodes with a mesh get a BoundingSphere fitted around the mesh's vertex positions. The Scene projects through
// the given projector.
func LoadGLTFFile(path string, projector ScreenProjector) (*Scene, error) {

	doc, err := gltf.Open(path)

	if err != nil {
		return nil, fmt.Errorf("loading glTF file %s: %w", path, err)
	}

	return SceneFromDocument(doc, projector)

}

// LoadGLTFData loads .gltf or .glb data from the reader given into a Scene; see LoadGLTFFile. Buffers must be
// embedded (in a .glb, or as data URIs).
func LoadGLTFData(data io.Reader, projector ScreenProjector) (*Scene, error) {

	doc := new(gltf.Document)

	if err := gltf.NewDecoder(data).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding glTF data: %w", err)
	}

	return SceneFromDocument(doc, projector)

}

// SceneFromDocument builds a Scene out of the default scene of an already-decoded glTF document. If the document
// has no scenes, every node that isn't another node's child is added.
func SceneFromDocument(doc *gltf.Document, projector ScreenProjector) (*Scene, error) {

	name := "Scene"
	roots := []int{}

	if len(doc.Scenes) > 0 {

		sceneIndex := 0
		if doc.Scene != nil {
			sceneIndex = int(*doc.Scene)
		}

		if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
			return nil, fmt.Errorf("glTF default scene %d out of range (%d scenes)", sceneIndex, len(doc.Scenes))
		}

		gltfScene := doc.Scenes[sceneIndex]
		if gltfScene.Name != "" {
			name = gltfScene.Name
		}

		for _, n := range gltfScene.Nodes {
			roots = append(roots, int(n))
		}

	} else {

		isChild := map[int]bool{}
		for _, node := range doc.Nodes {
			for _, c := range node.Children {
				isChild[int(c)] = true
			}
		}
		for i := range doc.Nodes {
			if !isChild[i] {
				roots = append(roots, i)
			}
		}

	}

	scene := NewScene(name, projector)

	meshBounds := map[int]*BoundingSphere{}
	visited := map[int]bool{}

	var build func(index int) (*Node, error)

	build = func(index int) (*Node, error) {

		if index < 0 || index >= len(doc.Nodes) {
			return nil, fmt.Errorf("glTF node %d out of range (%d nodes)", index, len(doc.Nodes))
		}

		if visited[index] {
			return nil, fmt.Errorf("glTF node %d is referenced more than once", index)
		}
		visited[index] = true

		gltfNode := doc.Nodes[index]

		nodeName := gltfNode.Name
		if nodeName == "" {
			nodeName = fmt.Sprintf("Node%d", index)
		}

		node := NewNode(nodeName)
		node.SetData(gltfNode.Extras)

		position, scale, rotation := gltfNodeTransform(gltfNode)
		node.SetLocalPositionVec(position)
		node.SetLocalScaleVec(scale)
		node.SetLocalRotation(rotation)

		if gltfNode.Mesh != nil {

			meshIndex := int(*gltfNode.Mesh)

			bounds, cached := meshBounds[meshIndex]
			if !cached {
				var err error
				bounds, err = meshBoundingSphere(doc, meshIndex)
				if err != nil {
					return nil, err
				}
				meshBounds[meshIndex] = bounds
			}

			if bounds != nil {
				b := *bounds
				node.SetBounds(&b)
			}

		}

		for _, c := range gltfNode.Children {
			child, err := build(int(c))
			if err != nil {
				return nil, err
			}
			node.AddChildren(child)
		}

		return node, nil

	}

	for _, r := range roots {
		node, err := build(r)
		if err != nil {
			return nil, err
		}
		scene.AddNodes(node)
	}

	return scene, nil

}

// gltfNodeTransform returns the local position, scale, and rotation of a glTF node, from either its matrix or its
// translation / rotation / scale properties.
func gltfNodeTransform(node *gltf.Node) (Vector, Vector, Quaternion) {

	matrix := mgl64.Mat4{}
	for i, v := range node.Matrix {
		matrix[i] = float64(v)
	}

	if !matrix.ApproxEqual(mgl64.Ident4()) && !matrix.ApproxEqual(mgl64.Mat4{}) {

		// glTF matrices are column-major, like mgl64's.
		position := fromMgl(matrix.Col(3).Vec3())

		c0, c1, c2 := matrix.Col(0).Vec3(), matrix.Col(1).Vec3(), matrix.Col(2).Vec3()
		scale := Vector{c0.Len(), c1.Len(), c2.Len()}

		rotation := NewQuaternionIdentity()
		if scale.X > 0 && scale.Y > 0 && scale.Z > 0 {
			rotMat := mgl64.Mat4FromCols(
				c0.Mul(1/scale.X).Vec4(0),
				c1.Mul(1/scale.Y).Vec4(0),
				c2.Mul(1/scale.Z).Vec4(0),
				mgl64.Vec4{0, 0, 0, 1},
			)
			q := mgl64.Mat4ToQuat(rotMat)
			rotation = NewQuaternion(q.V[0], q.V[1], q.V[2], q.W)
		}

		return position, scale, rotation

	}

	position := Vector{float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2])}

	scale := Vector{float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2])}
	if scale.IsZero() {
		// Scale wasn't set
		scale = Vector{1, 1, 1}
	}

	rotation := NewQuaternion(float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2]), float64(node.Rotation[3])).Unit()

	return position, scale, rotation

}

// meshBoundingSphere fits a sphere around all of a mesh's vertex positions: the sphere is centered on the middle of
// the positions' bounding box, with a radius reaching the farthest position. It returns nil if the mesh has no positions.
func meshBoundingSphere(doc *gltf.Document, meshIndex int) (*BoundingSphere, error) {

	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, fmt.Errorf("glTF mesh %d out of range (%d meshes)", meshIndex, len(doc.Meshes))
	}

	mesh := doc.Meshes[meshIndex]

	positions := []Vector{}

	for _, prim := range mesh.Primitives {

		accessorIndex, exists := prim.Attributes[gltf.POSITION]
		if !exists {
			continue
		}

		if int(accessorIndex) < 0 || int(accessorIndex) >= len(doc.Accessors) {
			return nil, fmt.Errorf("glTF accessor %d of mesh %q out of range (%d accessors)", accessorIndex, mesh.Name, len(doc.Accessors))
		}

		posBuffer := [][3]float32{}
		vertPos, err := modeler.ReadPosition(doc, doc.Accessors[accessorIndex], posBuffer)

		if err != nil {
			return nil, fmt.Errorf("reading positions of mesh %q: %w", mesh.Name, err)
		}

		for _, v := range vertPos {
			positions = append(positions, Vector{float64(v[0]), float64(v[1]), float64(v[2])})
		}

	}

	if len(positions) == 0 {
		return nil, nil
	}

	min := Vector{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := Vector{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, p := range positions {
		min = Vector{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Vector{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}

	sphere := &BoundingSphere{Center: min.Add(max).Scale(0.5)}

	for _, p := range positions {
		sphere.Radius = math.Max(sphere.Radius, p.Distance(sphere.Center))
	}

	return sphere, nil

}
