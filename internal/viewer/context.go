package viewer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/logger"
)

// Context is the mutable per-run state: navigation, timing, viewport and
// the close flag. It needs no GL context.
type Context struct {
	Nav         *camera.Navigator
	Clock       Clock
	Width       int
	Height      int
	ShouldClose bool

	toggle input.Latch
}

// NewContext starts a run with the given navigator and framebuffer size.
func NewContext(nav *camera.Navigator, width, height int) *Context {
	return &Context{Nav: nav, Width: width, Height: height}
}

// HandleInput applies one frame of input. Movement is scaled by the last
// Clock delta.
func (c *Context) HandleInput(f input.Frame) {
	if f.Quit || f.Keys.Down(input.KeyEscape) {
		c.ShouldClose = true
	}

	if f.Resized && f.Width > 0 && f.Height > 0 {
		c.Width, c.Height = f.Width, f.Height
	}

	if f.FocusGained {
		c.Nav.Recapture()
	}
	if f.CursorMoved {
		c.Nav.Look(f.CursorX, f.CursorY)
	}
	if f.ScrollY != 0 {
		c.Nav.Scroll(f.ScrollY)
	}

	if c.toggle.Rising(f.Keys.Down(input.KeyToggle)) {
		mode := c.Nav.Toggle()
		logger.Info("view mode switched", zap.Stringer("mode", mode))
	}

	c.Nav.Move(f.Keys, c.Clock.Delta)
}

// Projection builds the perspective matrix for the current viewport.
// fov is vertical, in degrees.
func (c *Context) Projection(fov, near, far float32) mgl32.Mat4 {
	aspect := float32(1)
	if c.Width > 0 && c.Height > 0 {
		aspect = float32(c.Width) / float32(c.Height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}
