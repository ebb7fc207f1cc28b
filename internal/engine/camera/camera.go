// Package camera implements the two navigation modes of the viewer: an
// orbit camera circling the model and a free first-person fly camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/geometry"
)

// Pitch limits in degrees.
const (
	MinPitch float32 = -89
	MaxPitch float32 = 89
)

// MinDistanceFactor is the orbit distance floor as a fraction of the model radius.
const MinDistanceFactor float32 = 0.1

var worldUp = mgl32.Vec3{0, 1, 0}

// Mode selects which variant receives input and renders.
type Mode int

const (
	ModeOrbit Mode = iota
	ModeFirstPerson
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFirstPerson:
		return "first-person"
	}
	return "unknown"
}

// Settings are the input scale factors.
type Settings struct {
	MouseSensitivity  float32
	ScrollSensitivity float32
	MoveSpeed         float32
}

// DefaultSettings returns the stock sensitivities.
func DefaultSettings() Settings {
	return Settings{
		MouseSensitivity:  0.1,
		ScrollSensitivity: 0.1,
		MoveSpeed:         25,
	}
}

// View is the per-frame camera output.
type View struct {
	View  mgl32.Mat4
	Model mgl32.Mat4
	Eye   mgl32.Vec3
}

// variant is one navigation mode's state.
type variant interface {
	look(yawDelta, pitchDelta float32)
	zoom(amount, minDistance float32)
	move(keys input.KeySet, speed float32)
	view(center mgl32.Vec3) View
}

// Navigator holds both variants and the active mode. Only the active
// variant is mutated by input; the other keeps its state untouched.
type Navigator struct {
	Mode        Mode
	Orbit       Orbit
	FirstPerson FirstPerson
	Target      geometry.BoundingVolume
	Settings    Settings

	firstMouse   bool
	lastX, lastY float64
}

// NewNavigator places both cameras relative to the model bounds: the orbit
// camera at twice the radius, the first-person camera the same distance
// along +Z from the center looking down -Z.
func NewNavigator(bv geometry.BoundingVolume, settings Settings) *Navigator {
	d := 2 * bv.Radius
	return &Navigator{
		Mode: ModeOrbit,
		Orbit: Orbit{
			Yaw:      -90,
			Pitch:    0,
			Distance: d,
		},
		FirstPerson: FirstPerson{
			Position: bv.Center.Add(mgl32.Vec3{0, 0, d}),
			Front:    mgl32.Vec3{0, 0, -1},
			Up:       worldUp,
			Yaw:      -90,
			Pitch:    0,
		},
		Target:     bv,
		Settings:   settings,
		firstMouse: true,
	}
}

func (n *Navigator) active() variant {
	if n.Mode == ModeFirstPerson {
		return &n.FirstPerson
	}
	return &n.Orbit
}

// Look consumes an absolute cursor position. The first sample after
// startup or Recapture only records the position.
func (n *Navigator) Look(x, y float64) {
	if n.firstMouse {
		n.lastX, n.lastY = x, y
		n.firstMouse = false
		return
	}
	xoff := float32(x-n.lastX) * n.Settings.MouseSensitivity
	yoff := float32(n.lastY-y) * n.Settings.MouseSensitivity
	n.lastX, n.lastY = x, y

	n.active().look(xoff, yoff)
}

// Recapture re-arms first-sample suppression, e.g. after focus returns.
func (n *Navigator) Recapture() {
	n.firstMouse = true
}

// Scroll zooms the orbit camera. It has no effect in first-person mode.
func (n *Navigator) Scroll(dy float64) {
	n.active().zoom(float32(dy)*n.Settings.ScrollSensitivity, n.MinDistance())
}

// Move applies held movement keys for a frame lasting dt seconds.
func (n *Navigator) Move(keys input.KeySet, dt float32) {
	n.active().move(keys, n.Settings.MoveSpeed*dt)
}

// Toggle switches the active mode and returns the new one.
func (n *Navigator) Toggle() Mode {
	if n.Mode == ModeOrbit {
		n.Mode = ModeFirstPerson
	} else {
		n.Mode = ModeOrbit
	}
	return n.Mode
}

// View computes the active camera's matrices.
func (n *Navigator) View() View {
	return n.active().view(n.Target.Center)
}

// MinDistance is the orbit distance floor for the current target.
func (n *Navigator) MinDistance() float32 {
	return MinDistanceFactor * n.Target.Radius
}

// direction converts yaw/pitch in degrees to a unit vector.
func direction(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(gomath.Cos(p) * gomath.Cos(y)),
		float32(gomath.Sin(p)),
		float32(gomath.Cos(p) * gomath.Sin(y)),
	}
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, MinPitch, MaxPitch)
}
