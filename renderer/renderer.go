package renderer

import (
	"fmt"
	"log/slog"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/internal/opengl"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/scene"
)

// Engine owns the GL backend, the shadow depth array, and the frame plan,
// and replays the pipeline once per frame. It must be driven from the main
// goroutine.
type Engine struct {
	win     *core.Window
	backend *opengl.Renderer
	shadows *opengl.ShadowArray

	classroom *scene.Classroom
	camera    *scene.FlyCamera
	plan      FramePlan

	shading  ShadingModel
	gWasDown bool

	lastTime float64
	log      *slog.Logger
}

// NewEngine initialises the GL backend, allocates the shadow array,
// uploads every scene mesh, and builds the frame plan. Any failure here is
// fatal to startup.
func NewEngine(win *core.Window, classroom *scene.Classroom, camera *scene.FlyCamera,
	shadowSize int, glassAlpha float32, log *slog.Logger) (*Engine, error) {

	backend, err := opengl.NewRenderer(log)
	if err != nil {
		return nil, err
	}

	shadows, err := opengl.NewShadowArray(shadowSize)
	if err != nil {
		backend.Destroy()
		return nil, err
	}

	for _, m := range classroom.Meshes() {
		if err := backend.UploadMesh(m); err != nil {
			shadows.Destroy()
			backend.Destroy()
			return nil, fmt.Errorf("upload scene: %w", err)
		}
	}

	e := &Engine{
		win:       win,
		backend:   backend,
		shadows:   shadows,
		classroom: classroom,
		camera:    camera,
		plan:      BuildFramePlan(classroom, glassAlpha),
		lastTime:  win.Time(),
		log:       log,
	}
	win.SetScrollCallback(func(xoff, yoff float64) {
		camera.HandleScroll(yoff)
	})

	log.Info("engine ready",
		"meshes", len(classroom.Meshes()),
		"shadow_casters", len(e.plan.ShadowCasters),
		"lights", scene.MaxLights,
		"shadow_size", shadowSize)
	return e, nil
}

// Run loops until the window closes or Escape is pressed.
func (e *Engine) Run() {
	for !e.win.ShouldClose() && !e.win.IsKeyPressed(core.KeyEscape) {
		e.Frame()
		e.win.SwapBuffers()
		e.win.PollEvents()
	}
}

// Frame advances the camera and renders once: the shadow pass writes each
// light's depth layer, then the lit pass draws the plan's groups in order.
func (e *Engine) Frame() {
	now := e.win.Time()
	dt := float32(now - e.lastTime)
	e.lastTime = now

	e.handleInput()
	e.camera.Update(e.win, dt)

	rig := &e.classroom.Lights

	// Shadow pass: one depth layer per light, casters only.
	e.shadows.Bind()
	proj := rig.Projection()
	for i := 0; i < scene.MaxLights; i++ {
		e.shadows.AttachLayer(i)
		e.backend.ClearDepth()
		lightVP := proj.Mul(rig.ViewMatrix(i))
		for _, m := range e.plan.ShadowCasters {
			e.backend.DrawMeshDepth(m, lightVP)
		}
	}
	e.shadows.Unbind()

	// Lit pass over the default framebuffer.
	w, h := e.win.GetFramebufferSize()
	e.backend.BeginFrame(w, h)

	view := e.camera.ViewMatrix()
	vp := e.camera.ProjectionMatrix(float32(w) / float32(h)).Mul(view)

	e.backend.SetFrameUniforms(view, rig.DepthBiasMatrices(), rig.CameraSpace(view), int(e.shading))
	e.backend.BindShadowArray(e.shadows)

	for _, g := range e.plan.Groups {
		if g.Blend {
			e.backend.BeginTransparent()
		}
		for _, m := range g.Meshes {
			e.backend.DrawMesh(m, vp, g.Alpha, g.Unlit)
		}
		if g.Blend {
			e.backend.EndTransparent()
		}
	}
}

// handleInput processes edge-triggered keys. G toggles the shading model;
// it fires on press, not while held.
func (e *Engine) handleInput() {
	gDown := e.win.IsKeyPressed(core.KeyG)
	if gDown && !e.gWasDown {
		if e.shading == ShadingPhong {
			e.shading = ShadingGouraud
		} else {
			e.shading = ShadingPhong
		}
		e.log.Info("shading model switched", "model", e.shading.String())
	}
	e.gWasDown = gDown
}

// Shading reports the active shading model.
func (e *Engine) Shading() ShadingModel {
	return e.shading
}

// Destroy releases all GPU resources: mesh buffers, programs, the shadow
// array, and every uploaded texture.
func (e *Engine) Destroy() {
	e.shadows.Destroy()
	e.backend.Destroy()
	for _, m := range e.classroom.Meshes() {
		if m.Material == nil {
			continue
		}
		for _, t := range m.Material.Textures() {
			opengl.DeleteTexture(t)
		}
	}
}
