// Command arcballsnap replays a scripted gesture against an arcball controller without a window, then writes the
// resulting overlay to a WebP image and logs the final rotation.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spellbook/arcball"
	"github.com/spellbook/arcball/internal/config"
	"github.com/spellbook/arcball/internal/logger"
	"github.com/spellbook/arcball/internal/snapshot"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {

	camera := cfg.Camera.NewCamera()

	scene, err := cfg.Scene.Build(camera)
	if err != nil {
		return err
	}

	logger.Info("scene loaded",
		zap.String("name", scene.Name),
		zap.Int("objects", len(scene.Objects())),
		zap.Bool("geometry", scene.HasGeometry()),
	)

	controller := arcball.NewController(scene, scene.Root, cfg.Arcball.ControllerOptions(logger.Named("arcball")))

	dispatcher := arcball.NewPointerDispatcher(controller)

	if err := arcball.ReplayGesture(dispatcher, cfg.Gesture.Steps); err != nil {
		return fmt.Errorf("replaying gesture: %w", err)
	}

	euler := controller.Rotation().ToEuler().ToDegrees()
	logger.Info("gesture replayed",
		zap.Int("steps", len(cfg.Gesture.Steps)),
		zap.Stringer("state", controller.State()),
		zap.Float64("x", euler.X),
		zap.Float64("y", euler.Y),
		zap.Float64("z", euler.Z),
	)

	w, h := camera.Size()

	if err := snapshot.WriteFile(cfg.Snapshot.Output, arcball.NewOverlay(scene, controller), w, h, snapshot.DefaultStyle()); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	logger.Info("snapshot written", zap.String("path", cfg.Snapshot.Output))

	return nil

}
