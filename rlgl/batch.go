package rlgl

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procGlInit                = bind.New("rlglInit", bind.Void, bind.Int, bind.Int)
	procGlClose               = bind.New("rlglClose", bind.Void)
	procLoadExtensions        = bind.New("rlLoadExtensions", bind.Void, bind.Ptr)
	procGetVersion            = bind.New("rlGetVersion", bind.Int)
	procSetFramebufferWidth   = bind.New("rlSetFramebufferWidth", bind.Void, bind.Int)
	procGetFramebufferWidth   = bind.New("rlGetFramebufferWidth", bind.Int)
	procSetFramebufferHeight  = bind.New("rlSetFramebufferHeight", bind.Void, bind.Int)
	procGetFramebufferHeight  = bind.New("rlGetFramebufferHeight", bind.Int)
	procGetTextureIDDefault   = bind.New("rlGetTextureIdDefault", bind.UInt)
	procGetShaderIDDefault    = bind.New("rlGetShaderIdDefault", bind.UInt)
	procLoadRenderBatch       = bind.New("rlLoadRenderBatch", cRenderBatch, bind.Int, bind.Int)
	procUnloadRenderBatch     = bind.New("rlUnloadRenderBatch", bind.Void, cRenderBatch)
	procDrawRenderBatch       = bind.New("rlDrawRenderBatch", bind.Void, bind.Ptr)
	procSetRenderBatchActive  = bind.New("rlSetRenderBatchActive", bind.Void, bind.Ptr)
	procDrawRenderBatchActive = bind.New("rlDrawRenderBatchActive", bind.Void)
	procCheckRenderBatchLimit = bind.New("rlCheckRenderBatchLimit", bind.Bool, bind.Int)
	procSetTexture            = bind.New("rlSetTexture", bind.Void, bind.UInt)
	procLoadDrawCube          = bind.New("rlLoadDrawCube", bind.Void)
	procLoadDrawQuad          = bind.New("rlLoadDrawQuad", bind.Void)
)

// GlInit initializes rlgl: buffers, shaders and textures.
func GlInit(width, height int32) {
	procGlInit.Call(nil, unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// GlClose releases the resources GlInit created.
func GlClose() {
	procGlClose.Call(nil)
}

// LoadExtensions loads OpenGL extensions through a native loader function.
func LoadExtensions(loader unsafe.Pointer) {
	procLoadExtensions.Call(nil, unsafe.Pointer(&loader))
}

// GetVersion returns the OpenGL version the library was built against.
func GetVersion() GlVersion {
	var r GlVersion
	procGetVersion.Call(unsafe.Pointer(&r))
	return r
}

// SetFramebufferWidth sets the current framebuffer width.
func SetFramebufferWidth(width int32) {
	procSetFramebufferWidth.Call(nil, unsafe.Pointer(&width))
}

// GetFramebufferWidth returns the current framebuffer width.
func GetFramebufferWidth() int32 {
	var r int32
	procGetFramebufferWidth.Call(unsafe.Pointer(&r))
	return r
}

// SetFramebufferHeight sets the current framebuffer height.
func SetFramebufferHeight(height int32) {
	procSetFramebufferHeight.Call(nil, unsafe.Pointer(&height))
}

// GetFramebufferHeight returns the current framebuffer height.
func GetFramebufferHeight() int32 {
	var r int32
	procGetFramebufferHeight.Call(unsafe.Pointer(&r))
	return r
}

// GetTextureIDDefault returns the default 1x1 white texture.
func GetTextureIDDefault() uint32 {
	var r uint32
	procGetTextureIDDefault.Call(unsafe.Pointer(&r))
	return r
}

// GetShaderIDDefault returns the default shader program.
func GetShaderIDDefault() uint32 {
	var r uint32
	procGetShaderIDDefault.Call(unsafe.Pointer(&r))
	return r
}

// LoadRenderBatch creates a render batch.
func LoadRenderBatch(numBuffers, bufferElements int32) RenderBatch {
	var r RenderBatch
	procLoadRenderBatch.Call(unsafe.Pointer(&r), unsafe.Pointer(&numBuffers), unsafe.Pointer(&bufferElements))
	return r
}

// UnloadRenderBatch deletes a render batch.
func UnloadRenderBatch(batch RenderBatch) {
	procUnloadRenderBatch.Call(nil, unsafe.Pointer(&batch))
}

// DrawRenderBatch draws and resets a render batch.
func DrawRenderBatch(batch *RenderBatch) {
	procDrawRenderBatch.Call(nil, unsafe.Pointer(&batch))
}

// SetRenderBatchActive makes batch the target of immediate mode calls. nil restores the default batch.
func SetRenderBatchActive(batch *RenderBatch) {
	procSetRenderBatchActive.Call(nil, unsafe.Pointer(&batch))
}

// DrawRenderBatchActive draws and resets the active batch.
func DrawRenderBatchActive() {
	procDrawRenderBatchActive.Call(nil)
}

// CheckRenderBatchLimit flushes the active batch if vCount more vertices do not fit.
func CheckRenderBatchLimit(vCount int32) bool {
	var r bool
	procCheckRenderBatchLimit.Call(unsafe.Pointer(&r), unsafe.Pointer(&vCount))
	return r
}

// SetTexture sets the texture of the following immediate mode vertices.
func SetTexture(id uint32) {
	procSetTexture.Call(nil, unsafe.Pointer(&id))
}

// LoadDrawCube draws a unit cube with its own buffers.
func LoadDrawCube() {
	procLoadDrawCube.Call(nil)
}

// LoadDrawQuad draws a screen quad with its own buffers.
func LoadDrawQuad() {
	procLoadDrawQuad.Call(nil)
}
