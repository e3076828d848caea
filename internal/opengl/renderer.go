package opengl

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/scene"
)

// shadowMapUnit is the fixed texture unit of the depth array; material
// textures use units 0..2.
const shadowMapUnit = 3

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Renderer is the OpenGL backend: two fixed programs (lit and depth-only),
// cached uniform locations, and lazily uploaded mesh buffers. All methods
// must run on the main goroutine with the context current.
type Renderer struct {
	program uint32

	mvpLoc   int32
	modelLoc int32
	viewLoc  int32

	depthBiasVPLoc [scene.MaxLights]int32
	lightPosCamLoc [scene.MaxLights]int32

	shadowMapsLoc   int32
	shadingModelLoc int32
	alphaLoc        int32
	useNormalMapLoc int32
	unlitLoc        int32
	diffuseTexLoc   int32
	normalTexLoc    int32
	specularTexLoc  int32

	// Depth-only shadow program
	depthProg   uint32
	depthMVPLoc int32

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// NewRenderer initialises OpenGL and compiles both programs.
// Must be called after the GLFW window context is made current.
func NewRenderer(log *slog.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	log.Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	prog, err := newProgram(litVertSrc(), litFragSrc())
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	depthProg, err := newProgram(depthVertSrc, depthFragSrc)
	if err != nil {
		return nil, fmt.Errorf("depth program: %w", err)
	}

	r := &Renderer{
		program: prog,

		mvpLoc:   gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc: gl.GetUniformLocation(prog, gl.Str("model\x00")),
		viewLoc:  gl.GetUniformLocation(prog, gl.Str("view\x00")),

		shadowMapsLoc:   gl.GetUniformLocation(prog, gl.Str("shadowMaps\x00")),
		shadingModelLoc: gl.GetUniformLocation(prog, gl.Str("shadingModel\x00")),
		alphaLoc:        gl.GetUniformLocation(prog, gl.Str("alpha\x00")),
		useNormalMapLoc: gl.GetUniformLocation(prog, gl.Str("useNormalMap\x00")),
		unlitLoc:        gl.GetUniformLocation(prog, gl.Str("unlit\x00")),
		diffuseTexLoc:   gl.GetUniformLocation(prog, gl.Str("diffuseTex\x00")),
		normalTexLoc:    gl.GetUniformLocation(prog, gl.Str("normalTex\x00")),
		specularTexLoc:  gl.GetUniformLocation(prog, gl.Str("specularTex\x00")),

		depthProg:   depthProg,
		depthMVPLoc: gl.GetUniformLocation(depthProg, gl.Str("depthMVP\x00")),

		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}
	for i := 0; i < scene.MaxLights; i++ {
		r.depthBiasVPLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("depthBiasVP[%d]\x00", i)))
		r.lightPosCamLoc[i] = gl.GetUniformLocation(prog,
			gl.Str(fmt.Sprintf("lightPosCam[%d]\x00", i)))
	}

	gl.UseProgram(prog)
	gl.Uniform1i(r.diffuseTexLoc, 0)
	gl.Uniform1i(r.normalTexLoc, 1)
	gl.Uniform1i(r.specularTexLoc, 2)
	gl.Uniform1i(r.shadowMapsLoc, shadowMapUnit)
	gl.UseProgram(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)
	bg := core.Color{R: 0, G: 0, B: 0.2, A: 1}
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)

	return r, nil
}

// UploadMesh pushes a mesh's geometry and material textures to the GPU.
// Draw calls upload lazily anyway; calling this at startup front-loads the
// work so the first frame does not stutter.
func (r *Renderer) UploadMesh(mesh *scene.Mesh) error {
	if gpu := r.ensureUploaded(mesh); gpu == nil {
		return fmt.Errorf("mesh %q has no geometry", mesh.Name)
	}
	if mesh.Material != nil {
		if err := UploadMaterial(mesh.Material); err != nil {
			return fmt.Errorf("mesh %q: %w", mesh.Name, err)
		}
	}
	return nil
}

func (r *Renderer) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := r.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	uvOff := int(unsafe.Offsetof(v.UV))
	normOff := int(unsafe.Offsetof(v.Normal))
	tangentOff := int(unsafe.Offsetof(v.Tangent))
	bitangentOff := int(unsafe.Offsetof(v.Bitangent))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	// Tangent frames exist only on normal-mapped meshes; the VAO records
	// the enable state, so other meshes never see stale tangent data.
	if mesh.HasNormalMap {
		gl.EnableVertexAttribArray(3)
		gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride, gl.PtrOffset(tangentOff))

		gl.EnableVertexAttribArray(4)
		gl.VertexAttribPointer(4, 3, gl.FLOAT, false, stride, gl.PtrOffset(bitangentOff))
	}

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}

// BeginFrame restores the default framebuffer after the shadow pass and
// clears it.
func (r *Renderer) BeginFrame(width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetFrameUniforms uploads the per-frame lit-pass state: the view matrix,
// every light's shadow lookup matrix and camera-space position, and the
// active shading model.
func (r *Renderer) SetFrameUniforms(view math.Mat4,
	depthBias [scene.MaxLights]math.Mat4,
	lightPosCam [scene.MaxLights]math.Vec3,
	shadingModel int) {

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewLoc, 1, false, (*float32)(unsafe.Pointer(&view[0][0])))
	for i := 0; i < scene.MaxLights; i++ {
		gl.UniformMatrix4fv(r.depthBiasVPLoc[i], 1, false,
			(*float32)(unsafe.Pointer(&depthBias[i][0][0])))
		gl.Uniform3f(r.lightPosCamLoc[i],
			lightPosCam[i].X, lightPosCam[i].Y, lightPosCam[i].Z)
	}
	gl.Uniform1i(r.shadingModelLoc, int32(shadingModel))
}

// BindShadowArray makes the depth array readable by the lit program.
// Call after the shadow pass, before any lit draw.
func (r *Renderer) BindShadowArray(sa *ShadowArray) {
	gl.ActiveTexture(gl.TEXTURE0 + shadowMapUnit)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, sa.DepthTex)
	gl.ActiveTexture(gl.TEXTURE0)
}

// DrawMesh draws every instance of a mesh with the lit program. Textures
// and the VAO bind once; each instance re-uploads only its mvp and model
// matrices before its indexed draw.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, vp math.Mat4, alpha float32, unlit bool) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil || len(mesh.Instances) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.Uniform1f(r.alphaLoc, alpha)
	if unlit {
		gl.Uniform1i(r.unlitLoc, 1)
	} else {
		gl.Uniform1i(r.unlitLoc, 0)
	}

	mat := mesh.Material
	if mat != nil && mat.Diffuse != nil {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, mat.Diffuse.GLID)
	}
	if mesh.HasNormalMap {
		gl.Uniform1i(r.useNormalMapLoc, 1)
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, mat.Normal.GLID)
		gl.ActiveTexture(gl.TEXTURE2)
		gl.BindTexture(gl.TEXTURE_2D, mat.Specular.GLID)
	} else {
		gl.Uniform1i(r.useNormalMapLoc, 0)
	}

	gl.BindVertexArray(gpu.VAO)
	for i := range mesh.Instances {
		model := mesh.Instances[i]
		mvp := vp.Mul(model)
		gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
		gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// DrawMeshDepth draws every instance of a mesh into the currently attached
// shadow layer with the depth-only program.
func (r *Renderer) DrawMeshDepth(mesh *scene.Mesh, lightVP math.Mat4) {
	gpu := r.ensureUploaded(mesh)
	if gpu == nil || len(mesh.Instances) == 0 {
		return
	}

	gl.UseProgram(r.depthProg)
	gl.BindVertexArray(gpu.VAO)
	for i := range mesh.Instances {
		depthMVP := lightVP.Mul(mesh.Instances[i])
		gl.UniformMatrix4fv(r.depthMVPLoc, 1, false,
			(*float32)(unsafe.Pointer(&depthMVP[0][0])))
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// ClearDepth clears the depth attachment of the current framebuffer.
// Used once per shadow layer after AttachLayer.
func (r *Renderer) ClearDepth() {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// BeginTransparent switches blending on and depth writes off for the
// transparent bucket. Depth testing stays on so glass is still occluded
// by opaque geometry in front of it.
func (r *Renderer) BeginTransparent() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
}

// EndTransparent restores the opaque draw state.
func (r *Renderer) EndTransparent() {
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Destroy frees every GPU object the renderer owns. Texture objects are
// owned by their materials and freed via DeleteTexture.
func (r *Renderer) Destroy() {
	for mesh, gpu := range r.gpuMeshes {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		mesh.GPUData = nil
	}
	r.gpuMeshes = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.depthProg != 0 {
		gl.DeleteProgram(r.depthProg)
		r.depthProg = 0
	}
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
