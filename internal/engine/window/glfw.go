package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/logger"
)

var glfwKeys = [...]struct {
	key  input.Key
	code glfw.Key
}{
	{input.KeyForward, glfw.KeyW},
	{input.KeyBack, glfw.KeyS},
	{input.KeyLeft, glfw.KeyA},
	{input.KeyRight, glfw.KeyD},
	{input.KeyAscend, glfw.KeySpace},
	{input.KeyDescend, glfw.KeyLeftShift},
	{input.KeyToggle, glfw.KeyC},
	{input.KeyEscape, glfw.KeyEscape},
}

// glfwWindow collects callback data into pending until the next PollFrame.
type glfwWindow struct {
	window  *glfw.Window
	pending input.Frame
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, &InitError{Stage: "glfw", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &InitError{Stage: "window", Err: err}
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	w := &glfwWindow{window: win}

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.pending.CursorX = xpos
		w.pending.CursorY = ypos
		w.pending.CursorMoved = true
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.pending.ScrollY += yoff
	})
	// Framebuffer size, not window size: they differ on high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending.Resized = true
		w.pending.Width = width
		w.pending.Height = height
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			w.pending.FocusGained = true
		}
	})

	glfw.SetTime(0)

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) PollFrame() input.Frame {
	w.pending = input.Frame{}
	glfw.PollEvents()

	f := w.pending
	for _, k := range glfwKeys {
		if w.window.GetKey(k.code) == glfw.Press {
			f.Keys = f.Keys.With(k.key)
		}
	}
	f.Quit = w.window.ShouldClose()
	return f
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) Time() float64 {
	return glfw.GetTime()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Info("closing window")
	w.window.Destroy()
	glfw.Terminate()
}
