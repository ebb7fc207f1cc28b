package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Window.Backend {
	case window.BackendSDL, window.BackendGLFW:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown window backend %q", c.Window.Backend))
	}

	if c.Model.Path == "" {
		err = multierr.Append(err, errors.New("model path is empty"))
	}

	cam := c.Camera
	if cam.MouseSensitivity <= 0 {
		err = multierr.Append(err, fmt.Errorf("mouse_sensitivity %v must be positive", cam.MouseSensitivity))
	}
	if cam.ScrollSensitivity <= 0 {
		err = multierr.Append(err, fmt.Errorf("scroll_sensitivity %v must be positive", cam.ScrollSensitivity))
	}
	if cam.MoveSpeed <= 0 {
		err = multierr.Append(err, fmt.Errorf("move_speed %v must be positive", cam.MoveSpeed))
	}
	if cam.Fov <= 0 || cam.Fov >= 180 {
		err = multierr.Append(err, fmt.Errorf("fov %v must be in (0, 180)", cam.Fov))
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		err = multierr.Append(err, fmt.Errorf("clip planes near=%v far=%v must satisfy 0 < near < far", cam.Near, cam.Far))
	}

	if (c.Shader.VertexPath == "") != (c.Shader.FragmentPath == "") {
		err = multierr.Append(err, errors.New("shader vertex_path and fragment_path must be set together"))
	}

	if n := len(c.Lighting.PointLights); n > lighting.MaxPointLights {
		err = multierr.Append(err, fmt.Errorf("%d point lights exceed the maximum of %d", n, lighting.MaxPointLights))
	}

	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, lerr)
	}

	return err
}
