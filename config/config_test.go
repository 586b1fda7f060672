package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fjord.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
  height: 720
  title: test window
camera:
  fov: 60
  speed: 10
scene:
  helicopters: 2
  particles: 50
  seed: 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "test window" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("fov = %v, want 60", cfg.Camera.FOV)
	}
	if cfg.Scene.Helicopters != 2 || cfg.Scene.Particles != 50 || cfg.Scene.Seed != 42 {
		t.Errorf("scene = %+v", cfg.Scene)
	}

	// Fields absent from the file keep their defaults.
	def := Default()
	if cfg.Camera.Near != def.Camera.Near || cfg.Camera.Far != def.Camera.Far {
		t.Errorf("near/far = %v/%v, want defaults %v/%v",
			cfg.Camera.Near, cfg.Camera.Far, def.Camera.Near, def.Camera.Far)
	}
	if cfg.Camera.Sensitivity != def.Camera.Sensitivity {
		t.Errorf("sensitivity = %v, want default %v", cfg.Camera.Sensitivity, def.Camera.Sensitivity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "window: [not: a: mapping")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero window", "window:\n  width: 0\n"},
		{"fov too wide", "camera:\n  fov: 180\n"},
		{"far before near", "camera:\n  near: 10\n  far: 5\n"},
		{"zero speed", "camera:\n  speed: 0\n"},
		{"negative particles", "scene:\n  particles: -1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, c.body)
			if _, err := Load(path); err == nil {
				t.Errorf("expected validation error for %q", c.body)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().validate(); err != nil {
		t.Fatal(err)
	}
}
