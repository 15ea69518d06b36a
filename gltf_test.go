package arcball

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// octahedronBuffer holds the six vertices (+-1 on each axis) of an octahedron as little-endian float32s.
const octahedronBuffer = "data:application/octet-stream;base64,AACAPwAAAAAAAAAAAACAvwAAAAAAAAAAAAAAAAAAgD8AAAAAAAAAAAAAgL8AAAAAAAAAAAAAAAAAAIA/AAAAAAAAAAAAAIC/"

// gltfDocument returns a glTF document with an octahedron mesh, the given scenes, and the given nodes.
func gltfDocument(scenes, nodes string) string {
	return `{
	"asset": {"version": "2.0"},
	` + scenes + `
	"nodes": ` + nodes + `,
	"meshes": [{"name": "Octahedron", "primitives": [{"attributes": {"POSITION": 0}}]}],
	"accessors": [{"bufferView": 0, "componentType": 5126, "count": 6, "type": "VEC3", "min": [-1, -1, -1], "max": [1, 1, 1]}],
	"bufferViews": [{"buffer": 0, "byteLength": 72}],
	"buffers": [{"byteLength": 72, "uri": "` + octahedronBuffer + `"}]
}`
}

var testGLTF = gltfDocument(
	`"scene": 0, "scenes": [{"name": "Level", "nodes": [0, 1]}],`,
	`[
		{"name": "Cube", "mesh": 0, "translation": [2, 0, 0]},
		{"name": "Empty", "translation": [0, 3, 0], "children": [2], "extras": {"spin": true}},
		{"name": "Child", "mesh": 0, "scale": [2, 2, 2]}
	]`,
)

func TestLoadGLTFData(t *testing.T) {

	scene, err := LoadGLTFData(strings.NewReader(testGLTF), nil)
	if err != nil {
		t.Fatal(err)
	}

	if scene.Name != "Level" {
		t.Errorf("expected scene name Level, got %q", scene.Name)
	}

	objects := scene.Objects()
	if len(objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(objects))
	}

	byName := map[string]SceneObject{}
	for _, obj := range objects {
		byName[obj.Name] = obj
	}

	cube := byName["Cube"]
	expectVector(t, cube.Position, NewVector(2, 0, 0), epsilon)
	if cube.Bounds == nil || !nearly(cube.Bounds.Radius, 1, 1e-6) {
		t.Errorf("expected a unit bounding sphere on Cube, got %+v", cube.Bounds)
	}

	if byName["Empty"].Bounds != nil {
		t.Error("expected no bounds on a node without a mesh")
	}

	child := byName["Child"]
	expectVector(t, child.Position, NewVector(0, 3, 0), epsilon)
	expectVector(t, child.Scale, NewVector(2, 2, 2), epsilon)

	if data, ok := scene.FindNode("Empty").Data().(map[string]interface{}); !ok || data["spin"] != true {
		t.Errorf("expected extras to be kept as node data, got %#v", scene.FindNode("Empty").Data())
	}

	sphere, ok := ComputeAggregateSphere(objects)
	if !ok {
		t.Fatal("expected a usable sphere")
	}
	expectVector(t, sphere.Center, NewVector(1, 3, 0), 1e-6)
	if !nearly(sphere.Radius, math.Sqrt(10)+2, 1e-6) {
		t.Errorf("expected radius %v, got %v", math.Sqrt(10)+2, sphere.Radius)
	}

}

func TestLoadGLTFWithoutScenes(t *testing.T) {

	doc := gltfDocument("", `[
		{"name": "Parent", "children": [1]},
		{"name": "Kid", "mesh": 0},
		{"name": "Loner", "mesh": 0}
	]`)

	scene, err := LoadGLTFData(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatal(err)
	}

	if n := len(scene.Root.Children()); n != 2 {
		t.Errorf("expected 2 top-level nodes, got %d", n)
	}
	if scene.FindNode("Kid") == nil || scene.FindNode("Kid").Parent() != scene.FindNode("Parent") {
		t.Error("expected Kid to stay under Parent")
	}

}

func TestLoadGLTFMatrix(t *testing.T) {

	doc := gltfDocument(`"scenes": [{"nodes": [0]}],`, `[
		{"name": "Moved", "mesh": 0, "matrix": [2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 5, 0, 0, 1]}
	]`)

	scene, err := LoadGLTFData(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatal(err)
	}

	node := scene.FindNode("Moved")
	expectVector(t, node.LocalPosition(), NewVector(5, 0, 0), 1e-6)
	expectVector(t, node.LocalScale(), NewVector(2, 2, 2), 1e-6)
	expectRotation(t, node.LocalRotation(), NewQuaternionIdentity(), 1e-9)

}

func TestLoadGLTFRepeatedNode(t *testing.T) {

	doc := gltfDocument(`"scenes": [{"nodes": [0, 1]}],`, `[
		{"name": "A", "children": [1]},
		{"name": "B", "mesh": 0}
	]`)

	if _, err := LoadGLTFData(strings.NewReader(doc), nil); err == nil {
		t.Error("expected an error for a node referenced twice")
	}

}

func TestLoadGLTFFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "scene.gltf")
	if err := os.WriteFile(path, []byte(testGLTF), 0644); err != nil {
		t.Fatal(err)
	}

	scene, err := LoadGLTFFile(path, NewCamera(640, 480))
	if err != nil {
		t.Fatal(err)
	}
	if !scene.HasGeometry() {
		t.Error("expected geometry")
	}

	if _, err := LoadGLTFFile(filepath.Join(t.TempDir(), "missing.gltf"), nil); err == nil {
		t.Error("expected an error for a missing file")
	}

}

func BenchmarkLoadGLTFData(b *testing.B) {
	data := []byte(testGLTF)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_, err := LoadGLTFData(bytes.NewReader(data), nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func TestLoadGLTFBadAccessor(t *testing.T) {

	doc := strings.Replace(gltfDocument(`"scenes": [{"nodes": [0]}],`, `[{"name": "Broken", "mesh": 0}]`), `"POSITION": 0`, `"POSITION": 3`, 1)

	if _, err := LoadGLTFData(strings.NewReader(doc), nil); err == nil {
		t.Error("expected an error for a position accessor that doesn't exist")
	}

}
