// Package window creates the OpenGL window and turns platform events into
// input.Frame snapshots. SDL2 is the default backend; GLFW is available as
// an alternative.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/meshview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted in Config.Backend.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Backend is a window with a current GL 4.1 core context and a captured
// cursor.
type Backend interface {
	// PollFrame drains pending platform events into one frame.
	PollFrame() input.Frame
	SwapBuffers()
	// Time returns seconds since the window was created.
	Time() float64
	FramebufferSize() (int, int)
	Close()
}

// InitError reports a failure to bring up the window or GL context.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// New creates a window using the configured backend.
func New(cfg Config) (Backend, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, &InitError{Stage: "backend", Err: fmt.Errorf("unknown window backend %q", cfg.Backend)}
}
