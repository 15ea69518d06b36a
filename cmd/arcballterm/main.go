// Command arcballterm drives an arcball controller from the terminal: drag with the left mouse button to turn the
// scene, press r to ease back to the starting orientation, and q or Esc to quit.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/spellbook/arcball"
	"github.com/spellbook/arcball/internal/config"
	"github.com/spellbook/arcball/internal/logger"
)

// Terminal cells are roughly twice as tall as they are wide, so the camera renders at twice the row count and
// every row covers two of its pixels.
const cellAspect = 2

const frameTime = 40 * time.Millisecond

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The screen owns the terminal, so logs only go to the file (if any).
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("terminal viewer failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type viewer struct {
	screen     tcell.Screen
	camera     *arcball.Camera
	scene      *arcball.Scene
	controller *arcball.Controller
	dispatcher *arcball.PointerDispatcher
	reset      config.ResetConfig
	buttonDown bool
}

func run(cfg *config.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	s.EnableMouse()

	camera := cfg.Camera.NewCamera()

	scene, err := cfg.Scene.Build(camera)
	if err != nil {
		return err
	}

	controller := arcball.NewController(scene, scene.Root, cfg.Arcball.ControllerOptions(logger.Named("arcball")))

	v := &viewer{
		screen:     s,
		camera:     camera,
		scene:      scene,
		controller: controller,
		dispatcher: arcball.NewPointerDispatcher(controller),
		reset:      cfg.Reset,
	}

	v.resize()

	events := make(chan tcell.Event)
	quit := make(chan struct{})

	// Input handler; the controller itself is only touched from the loop below.
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			v.controller.Update(float32(frameTime.Seconds()))
			v.draw()
		}
	}
}

// handle processes one terminal event, returning false when the viewer should quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				v.controller.Reset(float32(v.reset.Duration), v.reset.EasingFunc())
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		page := cellToPage(x, y)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !v.buttonDown:
			v.dispatcher.Press(page)
		case down:
			v.dispatcher.Move(page)
		case v.buttonDown:
			v.dispatcher.Move(page)
			v.dispatcher.Release()
		}
		v.buttonDown = down
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

func (v *viewer) resize() {
	w, h := v.screen.Size()
	v.camera.Resize(w, h*cellAspect)
}

func (v *viewer) draw() {

	s := v.screen
	s.Clear()

	overlay := arcball.NewOverlay(v.scene, v.controller)

	objectStyle := tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	for _, obj := range overlay.Objects {
		plotCircle(s, obj, '.', objectStyle)
	}

	if overlay.HasSphere {

		sphereStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if overlay.Dragging {
			sphereStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		plotCircle(s, overlay.Sphere, 'o', sphereStyle)

		axisStyles := [3]tcell.Style{
			tcell.StyleDefault.Foreground(tcell.ColorRed),
			tcell.StyleDefault.Foreground(tcell.ColorGreen),
			tcell.StyleDefault.Foreground(tcell.ColorBlue),
		}
		for i, tip := range overlay.Axes {
			plotLine(s, overlay.Sphere.Center, tip, rune("xyz"[i]), axisStyles[i])
		}

	}

	deg := overlay.Rotation.ToDegrees()
	_, h := s.Size()
	drawText(s, 1, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite), fmt.Sprintf("X %6.1f  Y %6.1f  Z %6.1f", deg.X, deg.Y, deg.Z))
	drawText(s, 1, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), "drag: rotate  r: reset  q: quit")

	s.Show()

}

// cellToPage converts a terminal cell to the camera's pixel space, at the middle of the cell.
func cellToPage(x, y int) arcball.ScreenPoint {
	return arcball.NewScreenPoint(float64(x)+0.5, (float64(y)+0.5)*cellAspect)
}

func pageToCell(p arcball.ScreenPoint) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / cellAspect))
}

func plotCircle(s tcell.Screen, circle arcball.ScreenSphere, r rune, style tcell.Style) {
	if circle.IsDegenerate() {
		return
	}
	steps := int(math.Min(math.Max(circle.Radius*8, 16), 720))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := pageToCell(arcball.NewScreenPoint(circle.Center.X+math.Cos(a)*circle.Radius, circle.Center.Y+math.Sin(a)*circle.Radius))
		s.SetContent(x, y, r, nil, style)
	}
}

func plotLine(s tcell.Screen, from, to arcball.ScreenPoint, r rune, style tcell.Style) {
	d := to.Sub(from)
	steps := int(math.Min(math.Max(math.Abs(d.X), math.Abs(d.Y)), 2048))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := pageToCell(arcball.NewScreenPoint(from.X+d.X*t, from.Y+d.Y*t))
		s.SetContent(x, y, r, nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
