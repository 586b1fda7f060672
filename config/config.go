// Package config loads the renderer configuration from a YAML file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Scene  Scene  `yaml:"scene"`
}

// Window configures the GLFW window and context.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Camera configures projection and free-fly controls.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`

	Position [3]float32 `yaml:"position"`
}

// Scene configures what gets built into the scene graph.
type Scene struct {
	Helicopters int `yaml:"helicopters"`
	Particles   int `yaml:"particles"`

	// Seed scatters particle home positions deterministically.
	Seed int64 `yaml:"seed"`

	// ShowpieceOBJ optionally replaces the procedural showpiece mesh with a
	// model loaded from disk. Empty means procedural.
	ShowpieceOBJ string `yaml:"showpiece_obj"`
}

// Default returns a configuration that runs without any file or external
// assets.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "fjord",
			VSync:  true,
		},
		Camera: Camera{
			FOV:         45,
			Near:        1,
			Far:         1000,
			Speed:       25,
			Sensitivity: 0.005,
			Position:    [3]float32{0, 10, 80},
		},
		Scene: Scene{
			Helicopters: 5,
			Particles:   400,
			Seed:        1,
		},
	}
}

// Load reads and validates the configuration at path. A missing file is an
// error; use Default when no file is wanted.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %q", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %q", path)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %q", path)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return errors.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return errors.Errorf("fov %v out of (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Errorf("near/far planes %v/%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Speed <= 0 {
		return errors.Errorf("camera speed %v", c.Camera.Speed)
	}
	if c.Camera.Sensitivity <= 0 {
		return errors.Errorf("mouse sensitivity %v", c.Camera.Sensitivity)
	}
	if c.Scene.Helicopters < 0 || c.Scene.Particles < 0 {
		return errors.Errorf("negative entity count: %d helicopters, %d particles",
			c.Scene.Helicopters, c.Scene.Particles)
	}
	return nil
}
