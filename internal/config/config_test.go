package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spellbook/arcball"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Camera.Width != 640 || cfg.Camera.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Camera.Width, cfg.Camera.Height)
	}
	if cfg.Arcball.Center != nil || cfg.Arcball.Radius != 0 {
		t.Error("expected a computed arcball sphere by default")
	}
	if len(cfg.Gesture.Steps) == 0 {
		t.Error("expected a default gesture")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Logging.Level)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Arcball.Center = &[3]float64{1, 2, 3}
	cfg.Arcball.Radius = 4
	cfg.Reset.Easing = "linear"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if loaded.Arcball.Center == nil || *loaded.Arcball.Center != [3]float64{1, 2, 3} {
		t.Errorf("center not round-tripped: %v", loaded.Arcball.Center)
	}
	if loaded.Arcball.Radius != 4 {
		t.Errorf("expected radius 4, got %v", loaded.Arcball.Radius)
	}
	if loaded.Reset.Easing != "linear" {
		t.Errorf("expected linear easing, got %q", loaded.Reset.Easing)
	}
}

func TestLoadMergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	data := []byte(`
camera:
  width: 800
gesture:
  steps:
    - action: press
      x: 10
      y: 20
    - action: release
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Camera.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Camera.Width)
	}
	if cfg.Camera.Height != 480 {
		t.Errorf("expected default height 480, got %d", cfg.Camera.Height)
	}
	if len(cfg.Gesture.Steps) != 2 || cfg.Gesture.Steps[0].Action != arcball.GesturePress || cfg.Gesture.Steps[0].Y != 20 {
		t.Errorf("unexpected gesture steps: %+v", cfg.Gesture.Steps)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBuildSceneFromObjects(t *testing.T) {
	cfg := Default()
	cfg.Scene.Objects = []ObjectConfig{
		{Name: "A", BoundsRadius: 1},
		{Position: [3]float64{4, 0, 0}, Scale: [3]float64{2, 2, 2}, BoundsRadius: 1},
		{Name: "Empty", NoGeometry: true},
	}

	scene, err := cfg.Scene.Build(cfg.Camera.NewCamera())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	objects := scene.Objects()
	if len(objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(objects))
	}
	if objects[1].Name != "Object1" {
		t.Errorf("expected generated name Object1, got %q", objects[1].Name)
	}
	if objects[0].Scale != arcball.NewVector(1, 1, 1) {
		t.Errorf("expected unset scale to default to 1, got %v", objects[0].Scale)
	}
	if objects[2].Bounds != nil {
		t.Error("expected no bounds for an object without geometry")
	}

	sphere, ok := arcball.ComputeAggregateSphere(objects)
	if !ok {
		t.Fatal("expected a usable sphere")
	}
	// Centers at 0 and 8 (position * scale), radii 1 and 2.
	if sphere.Center.X != 4 || sphere.Radius != 6 {
		t.Errorf("unexpected sphere %+v", sphere)
	}
}

func TestControllerOptions(t *testing.T) {
	cfg := ArcballConfig{Center: &[3]float64{1, 0, 0}, Radius: 2}
	options := cfg.ControllerOptions(nil)
	if options.ArcballCenter == nil || *options.ArcballCenter != arcball.NewVector(1, 0, 0) {
		t.Errorf("unexpected center %v", options.ArcballCenter)
	}
	if options.ArcballRadius != 2 {
		t.Errorf("unexpected radius %v", options.ArcballRadius)
	}
	if (ArcballConfig{}).ControllerOptions(nil).ArcballCenter != nil {
		t.Error("expected no center when none is configured")
	}
}

func TestEasingFallback(t *testing.T) {
	if (ResetConfig{Easing: "definitely-not-an-easing"}).EasingFunc() == nil {
		t.Error("expected a fallback easing")
	}
	if (ResetConfig{Easing: "in-out-quad"}).EasingFunc() == nil {
		t.Error("expected in-out-quad to resolve")
	}
}
