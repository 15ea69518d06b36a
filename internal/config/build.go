package config

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/spellbook/arcball"
)

// NewCamera creates the Camera the config describes.
func (c CameraConfig) NewCamera() *arcball.Camera {
	camera := arcball.NewCamera(c.Width, c.Height)
	camera.SetPerspective(c.Perspective)
	if c.FieldOfView > 0 {
		camera.SetFieldOfView(c.FieldOfView)
	}
	if c.OrthoScale > 0 {
		camera.SetOrthoScale(c.OrthoScale)
	}
	camera.Position = vec(c.Position)
	camera.Target = vec(c.Target)
	return camera
}

// Build creates the Scene the config describes, projecting through the given projector. A glTF file takes
// precedence over inline objects.
func (c SceneConfig) Build(projector arcball.ScreenProjector) (*arcball.Scene, error) {

	if c.GLTF != "" {
		scene, err := arcball.LoadGLTFFile(c.GLTF, projector)
		if err != nil {
			return nil, fmt.Errorf("building scene: %w", err)
		}
		return scene, nil
	}

	scene := arcball.NewScene("Scene", projector)

	for i, obj := range c.Objects {

		name := obj.Name
		if name == "" {
			name = fmt.Sprintf("Object%d", i)
		}

		node := arcball.NewNode(name)
		node.SetLocalPositionVec(vec(obj.Position))

		scale := vec(obj.Scale)
		if scale.IsZero() {
			scale = arcball.NewVector(1, 1, 1)
		}
		node.SetLocalScaleVec(scale)

		if !obj.NoGeometry {
			bounds := arcball.NewBoundingSphere(vec(obj.BoundsCenter), obj.BoundsRadius)
			node.SetBounds(&bounds)
		}

		scene.AddNodes(node)

	}

	return scene, nil

}

// ControllerOptions returns the arcball Options the config describes.
func (c ArcballConfig) ControllerOptions(logger *zap.Logger) arcball.Options {
	options := arcball.Options{
		ArcballRadius: c.Radius,
		Logger:        logger,
	}
	if c.Center != nil {
		center := vec(*c.Center)
		options.ArcballCenter = &center
	}
	return options
}

// EasingFunc returns the configured easing, falling back to OutCubic for unknown names.
func (c ResetConfig) EasingFunc() ease.TweenFunc {
	if fn, ok := arcball.EasingByName(c.Easing); ok {
		return fn
	}
	return ease.OutCubic
}

func vec(v [3]float64) arcball.Vector {
	return arcball.NewVector(v[0], v[1], v[2])
}
