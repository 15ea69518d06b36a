// Package config handles arcball tool configuration loading and management.
package config

import (
	"github.com/spellbook/arcball"
)

// Config holds all settings for the arcball tools.
type Config struct {
	Arcball  ArcballConfig  `yaml:"arcball"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Gesture  GestureConfig  `yaml:"gesture"`
	Reset    ResetConfig    `yaml:"reset"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ArcballConfig holds the explicit arcball sphere, if any.
type ArcballConfig struct {
	Center *[3]float64 `yaml:"center,omitempty"` // nil = computed from the scene
	Radius float64     `yaml:"radius"`           // 0 = computed from the scene
}

// CameraConfig holds the view the scene is projected through.
type CameraConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Perspective bool       `yaml:"perspective"`
	FieldOfView float64    `yaml:"fov"`
	OrthoScale  float64    `yaml:"ortho_scale"`
	Position    [3]float64 `yaml:"position"`
	Target      [3]float64 `yaml:"target"`
}

// SceneConfig holds where the scene comes from: a glTF file, or a list of objects.
type SceneConfig struct {
	GLTF    string         `yaml:"gltf"`
	Objects []ObjectConfig `yaml:"objects"`
}

// ObjectConfig describes one scene object inline.
type ObjectConfig struct {
	Name         string     `yaml:"name"`
	Position     [3]float64 `yaml:"position"`
	Scale        [3]float64 `yaml:"scale"` // all zero = [1, 1, 1]
	BoundsCenter [3]float64 `yaml:"bounds_center"`
	BoundsRadius float64    `yaml:"bounds_radius"`
	NoGeometry   bool       `yaml:"no_geometry"`
}

// GestureConfig holds a scripted gesture to replay.
type GestureConfig struct {
	Steps []arcball.GestureStep `yaml:"steps"`
}

// ResetConfig holds how the orientation eases back to identity.
type ResetConfig struct {
	Duration float64 `yaml:"duration"` // seconds
	Easing   string  `yaml:"easing"`
}

// SnapshotConfig holds headless snapshot settings.
type SnapshotConfig struct {
	Output string `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Arcball: ArcballConfig{
			Center: nil,
			Radius: 0,
		},
		Camera: CameraConfig{
			Width:       640,
			Height:      480,
			Perspective: true,
			FieldOfView: 60,
			OrthoScale:  10,
			Position:    [3]float64{0, 0, 10},
			Target:      [3]float64{0, 0, 0},
		},
		Scene: SceneConfig{
			Objects: []ObjectConfig{
				{Name: "Sphere", Scale: [3]float64{1, 1, 1}, BoundsRadius: 1},
				{Name: "Moon", Position: [3]float64{2.5, 0, 0}, Scale: [3]float64{0.5, 0.5, 0.5}, BoundsRadius: 1},
			},
		},
		Gesture: GestureConfig{
			Steps: arcball.Drag(arcball.NewScreenPoint(320, 240), arcball.NewScreenPoint(360, 220), arcball.NewScreenPoint(400, 200)),
		},
		Reset: ResetConfig{
			Duration: 0.5,
			Easing:   "OutCubic",
		},
		Snapshot: SnapshotConfig{
			Output: "arcball.webp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
