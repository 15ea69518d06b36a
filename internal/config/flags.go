package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagScene  = flag.String("scene", "", "glTF / glb scene to load")
	flagOut    = flag.String("out", "", "Snapshot output path (.webp)")
	flagWidth  = flag.Int("width", 0, "Screen width")
	flagHeight = flag.Int("height", 0, "Screen height")
	flagRadius = flag.Float64("radius", 0, "Explicit arcball radius (0 = computed)")
	flagOrtho  = flag.Bool("ortho", false, "Use an orthographic camera")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.GLTF = *flagScene
	}
	if *flagOut != "" {
		cfg.Snapshot.Output = *flagOut
	}
	if *flagWidth > 0 {
		cfg.Camera.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Camera.Height = *flagHeight
	}
	if *flagRadius > 0 {
		cfg.Arcball.Radius = *flagRadius
	}
	if *flagOrtho {
		cfg.Camera.Perspective = false
	}
}
