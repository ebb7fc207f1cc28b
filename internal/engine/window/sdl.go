package window

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/logger"
)

var sdlKeys = [...]struct {
	key  input.Key
	code sdl.Scancode
}{
	{input.KeyForward, sdl.SCANCODE_W},
	{input.KeyBack, sdl.SCANCODE_S},
	{input.KeyLeft, sdl.SCANCODE_A},
	{input.KeyRight, sdl.SCANCODE_D},
	{input.KeyAscend, sdl.SCANCODE_SPACE},
	{input.KeyDescend, sdl.SCANCODE_LSHIFT},
	{input.KeyToggle, sdl.SCANCODE_C},
	{input.KeyEscape, sdl.SCANCODE_ESCAPE},
}

// sdlWindow wraps an SDL2 window and OpenGL context. The cursor runs in
// relative mode; motion deltas are summed into a virtual cursor position.
type sdlWindow struct {
	window    *sdl.Window
	glContext sdl.GLContext

	start   uint64
	freq    float64
	cursorX float64
	cursorY float64
}

func newSDL(cfg Config) (*sdlWindow, error) {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, &InitError{Stage: "sdl", Err: err}
	}

	// Set OpenGL attributes BEFORE creating window
	// We want OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, &InitError{Stage: "window", Err: err}
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, &InitError{Stage: "context", Err: err}
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	sdl.SetRelativeMouseMode(true)

	w := &sdlWindow{
		window:    window,
		glContext: glContext,
		start:     sdl.GetPerformanceCounter(),
		freq:      float64(sdl.GetPerformanceFrequency()),
	}

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *sdlWindow) PollFrame() input.Frame {
	var f input.Frame

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.Quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				f.Resized = true
				f.Width, f.Height = w.FramebufferSize()
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				f.FocusGained = true
			case sdl.WINDOWEVENT_CLOSE:
				f.Quit = true
			}

		case *sdl.MouseMotionEvent:
			w.cursorX += float64(e.XRel)
			w.cursorY += float64(e.YRel)
			f.CursorMoved = true

		case *sdl.MouseWheelEvent:
			dy := float64(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			f.ScrollY += dy
		}
	}
	f.CursorX, f.CursorY = w.cursorX, w.cursorY

	state := sdl.GetKeyboardState()
	for _, k := range sdlKeys {
		if state[k.code] != 0 {
			f.Keys = f.Keys.With(k.key)
		}
	}
	return f
}

func (w *sdlWindow) SwapBuffers() {
	w.window.GLSwap()
}

func (w *sdlWindow) Time() float64 {
	return float64(sdl.GetPerformanceCounter()-w.start) / w.freq
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

// Close destroys the window and cleans up SDL2.
func (w *sdlWindow) Close() {
	logger.Info("closing window")

	sdl.SetRelativeMouseMode(false)
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
