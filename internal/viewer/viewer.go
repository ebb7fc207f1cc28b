// Package viewer wires the importer, camera, lighting and GL resources
// into the render loop.
package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/geometry"
	"github.com/Faultbox/meshview/internal/importer"
	"github.com/Faultbox/meshview/internal/logger"
)

// Viewer owns the window and every GPU resource for one model.
type Viewer struct {
	cfg      *config.Config
	window   window.Backend
	renderer *renderer.Renderer
	program  *shader.Program
	model    *mesh.Model
	rig      *lighting.Rig
	ctx      *Context
}

// New imports the model, opens the window and uploads everything to the
// GPU. Any failure releases what was already created.
func New(cfg *config.Config) (*Viewer, error) {
	meshes, err := importer.Import(cfg.Model.Path)
	if err != nil {
		return nil, err
	}
	vertices, indices := geometry.Stats(meshes)
	logger.Info("model imported",
		zap.String("path", cfg.Model.Path),
		zap.Int("meshes", len(meshes)),
		zap.Int("vertices", vertices),
		zap.Int("indices", indices),
	)

	v := &Viewer{cfg: cfg}

	v.window, err = window.New(cfg.WindowOptions())
	if err != nil {
		return nil, err
	}

	width, height := v.window.FramebufferSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Render.ClearColor,
	})
	if err != nil {
		v.Close()
		return nil, &window.InitError{Stage: "gl", Err: err}
	}

	if cfg.Shader.VertexPath != "" {
		v.program, err = shader.Load(cfg.Shader.VertexPath, cfg.Shader.FragmentPath)
	} else {
		v.program, err = shader.Default()
	}
	if err != nil {
		v.Close()
		return nil, err
	}
	logger.Info("shader program compiled", zap.Uint32("id", v.program.ID))

	v.model = mesh.NewModel(meshes)
	bounds := v.model.Bounds
	logger.Info("model uploaded",
		zap.Int("drawables", len(v.model.Meshes)),
		zap.Float32s("center", bounds.Center[:]),
		zap.Float32("radius", bounds.Radius),
	)

	v.rig = lighting.NewRig(cfg.Lighting, bounds.Center)
	nav := camera.NewNavigator(bounds, cfg.CameraSettings())
	v.ctx = NewContext(nav, width, height)

	return v, nil
}

// Run draws frames until the close flag is set.
func (v *Viewer) Run() error {
	logger.Info("starting render loop", zap.Stringer("mode", v.ctx.Nav.Mode))

	var fps fpsCounter
	var frame input.Frame
	for {
		now := v.window.Time()
		dt := v.ctx.Clock.Tick(now)

		v.ctx.HandleInput(frame)
		if v.ctx.ShouldClose {
			break
		}
		if frame.Resized {
			v.renderer.Resize(v.ctx.Width, v.ctx.Height)
		}

		v.render()
		v.window.SwapBuffers()
		frame = v.window.PollFrame()

		if n, ok := fps.frame(now); ok {
			logger.Debug("fps",
				zap.Int("count", n),
				zap.Float32("dt_ms", dt*1000),
				zap.Stringer("mode", v.ctx.Nav.Mode),
			)
		}
	}

	logger.Info("render loop stopped")
	return nil
}

// render draws one frame.
func (v *Viewer) render() {
	v.renderer.Begin()
	v.program.Use()

	cam := v.cfg.Camera
	v.program.SetMat4("projection", v.ctx.Projection(cam.Fov, cam.Near, cam.Far))

	view := v.ctx.Nav.View()
	v.program.SetMat4("view", view.View)
	v.program.SetVec3("viewPos", view.Eye)
	v.program.SetMat4("model", view.Model)

	v.rig.Apply(v.program)
	v.model.Draw()
}

// Close releases GPU resources, then the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.model != nil {
		v.model.Delete()
	}
	if v.program != nil {
		v.program.Delete()
	}
	if v.window != nil {
		v.window.Close()
	}
}
