package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"

	"github.com/askeland/fjord/asset"
	"github.com/askeland/fjord/camera"
	"github.com/askeland/fjord/config"
	"github.com/askeland/fjord/input"
	"github.com/askeland/fjord/render"
	"github.com/askeland/fjord/world"
)

func init() {
	// GLFW event processing must stay on the thread that ran main.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("load config")
		}
		log.WithField("path", *configPath).Info("loaded config")
	}

	state := input.NewState(glfw.MouseButtonRight)

	window, err := render.NewWindow(cfg.Window, state)
	if err != nil {
		log.WithError(err).Fatal("open window")
	}
	defer window.Terminate()

	// The render goroutine owns the GL context and the scene. It reports back
	// exactly once; main watches the channel so a dead renderer cannot leave
	// an unresponsive window behind.
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- errors.Errorf("render goroutine panicked: %v", r)
			}
		}()
		done <- renderLoop(log, cfg, window, state)
	}()

	var exitErr error
	running := true
	for running && !window.ShouldClose() {
		window.WaitEvents(0.02)

		select {
		case exitErr = <-done:
			running = false
		default:
		}
	}

	window.SetShouldClose(true)
	if running {
		// Window was closed by the user; wait for the renderer to notice.
		exitErr = <-done
	}

	if exitErr != nil {
		log.WithError(exitErr).Error("renderer failed")
		// os.Exit skips defers, so release GLFW here.
		window.Terminate()
		os.Exit(1)
	}
	log.Info("shut down")
}

func renderLoop(log *logrus.Logger, cfg config.Config, window *render.Window, state *input.State) error {
	runtime.LockOSThread()
	window.MakeContextCurrent()

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Delete()

	meshes, err := buildMeshes(cfg.Scene)
	if err != nil {
		return err
	}

	w, err := world.Build(cfg.Scene, meshes)
	if err != nil {
		return errors.Wrap(err, "build world")
	}

	home := mgl32.Vec3{cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2]}
	cam := camera.New(home, cfg.Camera.Speed, cfg.Camera.Sensitivity)

	fov := mgl32.DegToRad(cfg.Camera.FOV)
	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)

	log.WithFields(logrus.Fields{
		"helicopters": cfg.Scene.Helicopters,
		"particles":   cfg.Scene.Particles,
	}).Info("scene ready")

	start := glfw.GetTime()
	previous := start
	homing := false

	for !window.ShouldClose() {
		now := glfw.GetTime()
		elapsed := float32(now - start)
		dt := float32(now - previous)
		previous = now

		if width, height, ok := state.TakeResize(); ok {
			renderer.Resize(width, height)
			aspect = float32(width) / float32(height)
			log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("resized")
		}

		dx, dy := state.DrainMouseDelta()
		cam.Look(dx, dy)

		cam.Step(camera.Move{
			Forward: state.Held(glfw.KeyW),
			Back:    state.Held(glfw.KeyS),
			Left:    state.Held(glfw.KeyA),
			Right:   state.Held(glfw.KeyD),
			Up:      state.Held(glfw.KeyE),
			Down:    state.Held(glfw.KeyQ),
		}, dt)

		// Home glides the camera back to its starting point. Latched so
		// holding the key starts the flight once.
		if state.Held(glfw.KeyHome) {
			if !homing {
				homing = true
				cam.FlyTo(home, 2, ease.OutCubic)
			}
		} else {
			homing = false
		}
		cam.Update(dt)

		if state.Held(glfw.KeyEscape) {
			window.SetShouldClose(true)
		}

		w.Animate(elapsed, cam.Position)

		vp := cam.ViewProjection(fov, aspect, cfg.Camera.Near, cfg.Camera.Far)
		renderer.BeginFrame()
		w.Commands(vp, renderer.Draw)
		window.SwapBuffers()
	}

	return nil
}

// buildMeshes uploads the fixed geometry set. Everything is procedural unless
// the config points the showpiece at an OBJ file.
func buildMeshes(cfg config.Scene) (world.Meshes, error) {
	showpiece := asset.Box(mgl32.Vec3{6, 3, 10}, mgl32.Vec4{0.2, 0.35, 0.8, 1})
	if cfg.ShowpieceOBJ != "" {
		loaded, err := asset.LoadOBJ(cfg.ShowpieceOBJ)
		if err != nil {
			return world.Meshes{}, err
		}
		showpiece = loaded
	}

	return world.Meshes{
		Terrain:   render.Upload(asset.Box(mgl32.Vec3{160, 1, 160}, mgl32.Vec4{0.1, 0.3, 0.15, 1})),
		Showpiece: render.Upload(showpiece),
		HeliBody:  render.Upload(asset.Box(mgl32.Vec3{2.2, 2.2, 10}, mgl32.Vec4{0.75, 0.1, 0.1, 1})),
		MainRotor: render.Upload(asset.Box(mgl32.Vec3{10, 0.2, 0.6}, mgl32.Vec4{0.2, 0.2, 0.2, 1})),
		TailRotor: render.Upload(asset.Box(mgl32.Vec3{0.2, 2.4, 0.6}, mgl32.Vec4{0.2, 0.2, 0.2, 1})),
		Particle:  render.Upload(asset.Quad(0.6, mgl32.Vec4{0.9, 0.9, 1, 0.65})),
	}, nil
}
