package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/scene"
)

// ShadowArray is the depth-only framebuffer behind the shadow pass: one
// square depth texture array with a layer per light, rendered layer by
// layer through a single FBO. The array uses hardware depth comparison so
// the lit shader can sample it as sampler2DArrayShadow.
type ShadowArray struct {
	FBO      uint32
	DepthTex uint32
	Size     int32
	Layers   int32
}

// NewShadowArray allocates a size x size depth array with scene.MaxLights
// layers and verifies FBO completeness against layer 0. An incomplete
// framebuffer is unrecoverable and aborts startup.
func NewShadowArray(size int) (*ShadowArray, error) {
	sa := &ShadowArray{Size: int32(size), Layers: scene.MaxLights}

	gl.GenTextures(1, &sa.DepthTex)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, sa.DepthTex)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.DEPTH_COMPONENT16,
		sa.Size, sa.Size, sa.Layers, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	// Hardware PCF: sampling returns the comparison result, not a depth
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.GenFramebuffers(1, &sa.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sa.FBO)
	gl.FramebufferTextureLayer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, sa.DepthTex, 0, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteTextures(1, &sa.DepthTex)
		gl.DeleteFramebuffers(1, &sa.FBO)
		return nil, fmt.Errorf("shadow FBO incomplete: status=0x%X", status)
	}
	return sa, nil
}

// Bind makes the shadow FBO current and sets the depth-pass viewport.
func (sa *ShadowArray) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, sa.FBO)
	gl.Viewport(0, 0, sa.Size, sa.Size)
}

// AttachLayer retargets the depth attachment at one array layer. Called
// once per light inside the shadow pass, before clearing that layer.
func (sa *ShadowArray) AttachLayer(layer int) {
	gl.FramebufferTextureLayer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, sa.DepthTex, 0, int32(layer))
}

// Unbind restores the default framebuffer.
func (sa *ShadowArray) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Destroy frees GPU resources.
func (sa *ShadowArray) Destroy() {
	if sa.FBO != 0 {
		gl.DeleteFramebuffers(1, &sa.FBO)
		sa.FBO = 0
	}
	if sa.DepthTex != 0 {
		gl.DeleteTextures(1, &sa.DepthTex)
		sa.DepthTex = 0
	}
}
