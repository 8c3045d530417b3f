package rlgl

import (
	"unsafe"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procActiveTextureSlot       = bind.New("rlActiveTextureSlot", bind.Void, bind.Int)
	procEnableTexture           = bind.New("rlEnableTexture", bind.Void, bind.UInt)
	procDisableTexture          = bind.New("rlDisableTexture", bind.Void)
	procEnableTextureCubemap    = bind.New("rlEnableTextureCubemap", bind.Void, bind.UInt)
	procDisableTextureCubemap   = bind.New("rlDisableTextureCubemap", bind.Void)
	procTextureParameters       = bind.New("rlTextureParameters", bind.Void, bind.UInt, bind.Int, bind.Int)
	procCubemapParameters       = bind.New("rlCubemapParameters", bind.Void, bind.UInt, bind.Int, bind.Int)
	procEnableShader            = bind.New("rlEnableShader", bind.Void, bind.UInt)
	procDisableShader           = bind.New("rlDisableShader", bind.Void)
	procEnableFramebuffer       = bind.New("rlEnableFramebuffer", bind.Void, bind.UInt)
	procDisableFramebuffer      = bind.New("rlDisableFramebuffer", bind.Void)
	procActiveDrawBuffers       = bind.New("rlActiveDrawBuffers", bind.Void, bind.Int)
	procBlitFramebuffer         = bind.Optional("rlBlitFramebuffer", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int)
	procEnableColorBlend        = bind.New("rlEnableColorBlend", bind.Void)
	procDisableColorBlend       = bind.New("rlDisableColorBlend", bind.Void)
	procEnableDepthTest         = bind.New("rlEnableDepthTest", bind.Void)
	procDisableDepthTest        = bind.New("rlDisableDepthTest", bind.Void)
	procEnableDepthMask         = bind.New("rlEnableDepthMask", bind.Void)
	procDisableDepthMask        = bind.New("rlDisableDepthMask", bind.Void)
	procEnableBackfaceCulling   = bind.New("rlEnableBackfaceCulling", bind.Void)
	procDisableBackfaceCulling  = bind.New("rlDisableBackfaceCulling", bind.Void)
	procSetCullFace             = bind.New("rlSetCullFace", bind.Void, bind.Int)
	procEnableScissorTest       = bind.New("rlEnableScissorTest", bind.Void)
	procDisableScissorTest      = bind.New("rlDisableScissorTest", bind.Void)
	procScissor                 = bind.New("rlScissor", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int)
	procEnableWireMode          = bind.New("rlEnableWireMode", bind.Void)
	procEnablePointMode         = bind.New("rlEnablePointMode", bind.Void)
	procDisableWireMode         = bind.New("rlDisableWireMode", bind.Void)
	procSetLineWidth            = bind.New("rlSetLineWidth", bind.Void, bind.Float)
	procGetLineWidth            = bind.New("rlGetLineWidth", bind.Float)
	procEnableSmoothLines       = bind.New("rlEnableSmoothLines", bind.Void)
	procDisableSmoothLines      = bind.New("rlDisableSmoothLines", bind.Void)
	procEnableStereoRender      = bind.New("rlEnableStereoRender", bind.Void)
	procDisableStereoRender     = bind.New("rlDisableStereoRender", bind.Void)
	procIsStereoRenderEnabled   = bind.New("rlIsStereoRenderEnabled", bind.Bool)
	procClearColor              = bind.New("rlClearColor", bind.Void, bind.UChar, bind.UChar, bind.UChar, bind.UChar)
	procClearScreenBuffers      = bind.New("rlClearScreenBuffers", bind.Void)
	procCheckErrors             = bind.New("rlCheckErrors", bind.Void)
	procSetBlendMode            = bind.New("rlSetBlendMode", bind.Void, bind.Int)
	procSetBlendFactors         = bind.New("rlSetBlendFactors", bind.Void, bind.Int, bind.Int, bind.Int)
	procSetBlendFactorsSeparate = bind.New("rlSetBlendFactorsSeparate", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int)
)

// ActiveTextureSlot selects the active texture unit.
func ActiveTextureSlot(slot int32) {
	procActiveTextureSlot.Call(nil, unsafe.Pointer(&slot))
}

// EnableTexture binds a 2D texture.
func EnableTexture(id uint32) {
	procEnableTexture.Call(nil, unsafe.Pointer(&id))
}

// DisableTexture unbinds the 2D texture.
func DisableTexture() {
	procDisableTexture.Call(nil)
}

// EnableTextureCubemap binds a cubemap texture.
func EnableTextureCubemap(id uint32) {
	procEnableTextureCubemap.Call(nil, unsafe.Pointer(&id))
}

// DisableTextureCubemap unbinds the cubemap texture.
func DisableTextureCubemap() {
	procDisableTextureCubemap.Call(nil)
}

// TextureParameters sets a texture parameter (TextureWrapS, TextureMagFilter, ...).
func TextureParameters(id uint32, param, value int32) {
	procTextureParameters.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&param), unsafe.Pointer(&value))
}

// CubemapParameters sets a cubemap parameter.
func CubemapParameters(id uint32, param, value int32) {
	procCubemapParameters.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&param), unsafe.Pointer(&value))
}

// EnableShader binds a shader program.
func EnableShader(id uint32) {
	procEnableShader.Call(nil, unsafe.Pointer(&id))
}

// DisableShader unbinds the shader program.
func DisableShader() {
	procDisableShader.Call(nil)
}

// EnableFramebuffer binds a framebuffer for rendering.
func EnableFramebuffer(id uint32) {
	procEnableFramebuffer.Call(nil, unsafe.Pointer(&id))
}

// DisableFramebuffer binds the default framebuffer.
func DisableFramebuffer() {
	procDisableFramebuffer.Call(nil)
}

// ActiveDrawBuffers activates count color attachments of the bound framebuffer.
func ActiveDrawBuffers(count int32) {
	procActiveDrawBuffers.Call(nil, unsafe.Pointer(&count))
}

// BlitFramebuffer copies a region from the read framebuffer to the draw framebuffer.
func BlitFramebuffer(srcX, srcY, srcWidth, srcHeight, dstX, dstY, dstWidth, dstHeight, bufferMask int32) {
	procBlitFramebuffer.Call(nil, unsafe.Pointer(&srcX), unsafe.Pointer(&srcY), unsafe.Pointer(&srcWidth), unsafe.Pointer(&srcHeight), unsafe.Pointer(&dstX), unsafe.Pointer(&dstY), unsafe.Pointer(&dstWidth), unsafe.Pointer(&dstHeight), unsafe.Pointer(&bufferMask))
}

// EnableColorBlend enables color blending.
func EnableColorBlend() {
	procEnableColorBlend.Call(nil)
}

// DisableColorBlend disables color blending.
func DisableColorBlend() {
	procDisableColorBlend.Call(nil)
}

// EnableDepthTest enables depth testing.
func EnableDepthTest() {
	procEnableDepthTest.Call(nil)
}

// DisableDepthTest disables depth testing.
func DisableDepthTest() {
	procDisableDepthTest.Call(nil)
}

// EnableDepthMask enables depth writes.
func EnableDepthMask() {
	procEnableDepthMask.Call(nil)
}

// DisableDepthMask disables depth writes.
func DisableDepthMask() {
	procDisableDepthMask.Call(nil)
}

// EnableBackfaceCulling enables backface culling.
func EnableBackfaceCulling() {
	procEnableBackfaceCulling.Call(nil)
}

// DisableBackfaceCulling disables backface culling.
func DisableBackfaceCulling() {
	procDisableBackfaceCulling.Call(nil)
}

// SetCullFace selects which faces are culled.
func SetCullFace(mode CullMode) {
	procSetCullFace.Call(nil, unsafe.Pointer(&mode))
}

// EnableScissorTest enables the scissor test.
func EnableScissorTest() {
	procEnableScissorTest.Call(nil)
}

// DisableScissorTest disables the scissor test.
func DisableScissorTest() {
	procDisableScissorTest.Call(nil)
}

// Scissor sets the scissor rectangle.
func Scissor(x, y, width, height int32) {
	procScissor.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// EnableWireMode draws polygons as lines.
func EnableWireMode() {
	procEnableWireMode.Call(nil)
}

// EnablePointMode draws polygons as points.
func EnablePointMode() {
	procEnablePointMode.Call(nil)
}

// DisableWireMode draws polygons filled.
func DisableWireMode() {
	procDisableWireMode.Call(nil)
}

// SetLineWidth sets the rasterized line width.
func SetLineWidth(width float32) {
	procSetLineWidth.Call(nil, unsafe.Pointer(&width))
}

// GetLineWidth returns the rasterized line width.
func GetLineWidth() float32 {
	var r float32
	procGetLineWidth.Call(unsafe.Pointer(&r))
	return r
}

// EnableSmoothLines enables line antialiasing.
func EnableSmoothLines() {
	procEnableSmoothLines.Call(nil)
}

// DisableSmoothLines disables line antialiasing.
func DisableSmoothLines() {
	procDisableSmoothLines.Call(nil)
}

// EnableStereoRender enables stereo rendering.
func EnableStereoRender() {
	procEnableStereoRender.Call(nil)
}

// DisableStereoRender disables stereo rendering.
func DisableStereoRender() {
	procDisableStereoRender.Call(nil)
}

// IsStereoRenderEnabled reports whether stereo rendering is on.
func IsStereoRenderEnabled() bool {
	var r bool
	procIsStereoRenderEnabled.Call(unsafe.Pointer(&r))
	return r
}

// ClearColor sets the clear color.
func ClearColor(r, g, b, a uint8) {
	procClearColor.Call(nil, unsafe.Pointer(&r), unsafe.Pointer(&g), unsafe.Pointer(&b), unsafe.Pointer(&a))
}

// ClearScreenBuffers clears the color and depth buffers.
func ClearScreenBuffers() {
	procClearScreenBuffers.Call(nil)
}

// CheckErrors logs pending OpenGL errors.
func CheckErrors() {
	procCheckErrors.Call(nil)
}

// SetBlendMode selects a blend mode.
func SetBlendMode(mode rl.BlendMode) {
	procSetBlendMode.Call(nil, unsafe.Pointer(&mode))
}

// SetBlendFactors sets the factors and equation of BlendCustom.
func SetBlendFactors(glSrcFactor, glDstFactor, glEquation int32) {
	procSetBlendFactors.Call(nil, unsafe.Pointer(&glSrcFactor), unsafe.Pointer(&glDstFactor), unsafe.Pointer(&glEquation))
}

// SetBlendFactorsSeparate sets separate color and alpha factors for BlendCustomSeparate.
func SetBlendFactorsSeparate(glSrcRGB, glDstRGB, glSrcAlpha, glDstAlpha, glEqRGB, glEqAlpha int32) {
	procSetBlendFactorsSeparate.Call(nil, unsafe.Pointer(&glSrcRGB), unsafe.Pointer(&glDstRGB), unsafe.Pointer(&glSrcAlpha), unsafe.Pointer(&glDstAlpha), unsafe.Pointer(&glEqRGB), unsafe.Pointer(&glEqAlpha))
}
