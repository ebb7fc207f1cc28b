// Package config handles viewer configuration loading and validation.
package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/window"
)

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig    `yaml:"window"`
	Model    ModelConfig     `yaml:"model"`
	Camera   CameraConfig    `yaml:"camera"`
	Shader   ShaderConfig    `yaml:"shader"`
	Lighting lighting.Config `yaml:"lighting"`
	Logging  LoggingConfig   `yaml:"logging"`
	Render   RenderConfig    `yaml:"render"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
}

// ModelConfig names the file to view.
type ModelConfig struct {
	Path string `yaml:"path"`
}

// CameraConfig holds navigation and projection settings. Fov is the
// vertical field of view in degrees.
type CameraConfig struct {
	MouseSensitivity  float32 `yaml:"mouse_sensitivity"`
	ScrollSensitivity float32 `yaml:"scroll_sensitivity"`
	MoveSpeed         float32 `yaml:"move_speed"`
	Fov               float32 `yaml:"fov"`
	Near              float32 `yaml:"near"`
	Far               float32 `yaml:"far"`
}

// ShaderConfig points at custom shader sources. Empty paths select the
// built-in Phong program.
type ShaderConfig struct {
	VertexPath   string `yaml:"vertex_path"`
	FragmentPath string `yaml:"fragment_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// RenderConfig holds frame settings.
type RenderConfig struct {
	ClearColor mgl32.Vec3 `yaml:"clear_color"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	settings := camera.DefaultSettings()
	return &Config{
		Window: WindowConfig{
			Title:      "meshview",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Backend:    window.BackendSDL,
		},
		Model: ModelConfig{
			Path: "assets/cube.obj",
		},
		Camera: CameraConfig{
			MouseSensitivity:  settings.MouseSensitivity,
			ScrollSensitivity: settings.ScrollSensitivity,
			MoveSpeed:         settings.MoveSpeed,
			Fov:               45,
			Near:              0.1,
			Far:               1000,
		},
		Lighting: lighting.DefaultConfig(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Render: RenderConfig{
			ClearColor: mgl32.Vec3{0.1, 0.1, 0.1},
		},
	}
}

// WindowOptions converts the window section for window.New.
func (c *Config) WindowOptions() window.Config {
	return window.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		Fullscreen: c.Window.Fullscreen,
		VSync:      c.Window.VSync,
		Backend:    c.Window.Backend,
	}
}

// CameraSettings converts the camera section for camera.NewNavigator.
func (c *Config) CameraSettings() camera.Settings {
	return camera.Settings{
		MouseSensitivity:  c.Camera.MouseSensitivity,
		ScrollSensitivity: c.Camera.ScrollSensitivity,
		MoveSpeed:         c.Camera.MoveSpeed,
	}
}
