package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/geometry"
)

func newTestContext() *Context {
	bv := geometry.BoundingVolume{Radius: 2}
	return NewContext(camera.NewNavigator(bv, camera.DefaultSettings()), 1280, 720)
}

func TestToggleHeldSwitchesOnce(t *testing.T) {
	ctx := newTestContext()
	held := input.Frame{Keys: input.KeySet(0).With(input.KeyToggle)}

	for range 30 {
		ctx.HandleInput(held)
	}
	if ctx.Nav.Mode != camera.ModeFirstPerson {
		t.Fatalf("mode after holding toggle = %v, want first-person", ctx.Nav.Mode)
	}

	ctx.HandleInput(input.Frame{})
	ctx.HandleInput(held)
	if ctx.Nav.Mode != camera.ModeOrbit {
		t.Errorf("mode after second press = %v, want orbit", ctx.Nav.Mode)
	}
}

func TestEscapeAndQuitSetCloseFlag(t *testing.T) {
	tests := []struct {
		name  string
		frame input.Frame
		want  bool
	}{
		{"idle", input.Frame{}, false},
		{"escape", input.Frame{Keys: input.KeySet(0).With(input.KeyEscape)}, true},
		{"window closed", input.Frame{Quit: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			ctx.HandleInput(tt.frame)
			if ctx.ShouldClose != tt.want {
				t.Errorf("ShouldClose = %v, want %v", ctx.ShouldClose, tt.want)
			}
		})
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	ctx := newTestContext()
	ctx.HandleInput(input.Frame{Resized: true, Width: 800, Height: 600})
	if ctx.Width != 800 || ctx.Height != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", ctx.Width, ctx.Height)
	}

	// Minimized windows report zero size; keep the last usable one.
	ctx.HandleInput(input.Frame{Resized: true})
	if ctx.Width != 800 || ctx.Height != 600 {
		t.Errorf("viewport = %dx%d after zero resize, want 800x600", ctx.Width, ctx.Height)
	}
}

func TestCursorAndFocus(t *testing.T) {
	ctx := newTestContext()
	start := ctx.Nav.Orbit.Yaw

	ctx.HandleInput(input.Frame{CursorMoved: true, CursorX: 100, CursorY: 100})
	if ctx.Nav.Orbit.Yaw != start {
		t.Fatalf("first cursor sample changed yaw to %f", ctx.Nav.Orbit.Yaw)
	}
	ctx.HandleInput(input.Frame{CursorMoved: true, CursorX: 110, CursorY: 100})
	if !mgl32.FloatEqual(ctx.Nav.Orbit.Yaw, start+1) {
		t.Errorf("yaw = %f, want %f", ctx.Nav.Orbit.Yaw, start+1)
	}

	yaw := ctx.Nav.Orbit.Yaw
	ctx.HandleInput(input.Frame{FocusGained: true, CursorMoved: true, CursorX: 900, CursorY: 900})
	if ctx.Nav.Orbit.Yaw != yaw {
		t.Errorf("yaw jumped to %f after focus regained", ctx.Nav.Orbit.Yaw)
	}
}

func TestScrollAndMovementUseClock(t *testing.T) {
	ctx := newTestContext()
	ctx.HandleInput(input.Frame{ScrollY: 1})
	if want := float32(4 * 0.9); !mgl32.FloatEqual(ctx.Nav.Orbit.Distance, want) {
		t.Errorf("distance = %f, want %f", ctx.Nav.Orbit.Distance, want)
	}

	ctx.Clock.Tick(0)
	ctx.Clock.Tick(0.5)
	ctx.HandleInput(input.Frame{Keys: input.KeySet(0).With(input.KeyForward)})
	if want := float32(12.5); !mgl32.FloatEqual(ctx.Nav.Orbit.Offset.Y(), want) {
		t.Errorf("offset y = %f, want %f", ctx.Nav.Orbit.Offset.Y(), want)
	}
}

func TestProjectionAspect(t *testing.T) {
	ctx := newTestContext()
	ctx.Width, ctx.Height = 1000, 500

	got := ctx.Projection(45, 0.1, 1000)
	want := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 1000)
	if !got.ApproxEqual(want) {
		t.Errorf("projection = %v, want %v", got, want)
	}

	ctx.Height = 0
	got = ctx.Projection(45, 0.1, 1000)
	want = mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 1000)
	if !got.ApproxEqual(want) {
		t.Error("zero-height viewport should fall back to aspect 1")
	}
}
