package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procClearBackground      = bind.New("ClearBackground", bind.Void, cColor)
	procBeginDrawing         = bind.New("BeginDrawing", bind.Void)
	procEndDrawing           = bind.New("EndDrawing", bind.Void)
	procBeginMode2D          = bind.New("BeginMode2D", bind.Void, cCamera2D)
	procEndMode2D            = bind.New("EndMode2D", bind.Void)
	procBeginMode3D          = bind.New("BeginMode3D", bind.Void, cCamera3D)
	procEndMode3D            = bind.New("EndMode3D", bind.Void)
	procBeginTextureMode     = bind.New("BeginTextureMode", bind.Void, cRenderTexture)
	procEndTextureMode       = bind.New("EndTextureMode", bind.Void)
	procBeginShaderMode      = bind.New("BeginShaderMode", bind.Void, cShader)
	procEndShaderMode        = bind.New("EndShaderMode", bind.Void)
	procBeginBlendMode       = bind.New("BeginBlendMode", bind.Void, bind.Int)
	procEndBlendMode         = bind.New("EndBlendMode", bind.Void)
	procBeginScissorMode     = bind.New("BeginScissorMode", bind.Void, bind.Int, bind.Int, bind.Int, bind.Int)
	procEndScissorMode       = bind.New("EndScissorMode", bind.Void)
	procBeginVrStereoMode    = bind.New("BeginVrStereoMode", bind.Void, cVrStereoConfig)
	procEndVrStereoMode      = bind.New("EndVrStereoMode", bind.Void)
	procLoadVrStereoConfig   = bind.New("LoadVrStereoConfig", cVrStereoConfig, cVrDeviceInfo)
	procUnloadVrStereoConfig = bind.New("UnloadVrStereoConfig", bind.Void, cVrStereoConfig)
)

// ClearBackground fills the framebuffer with color.
func ClearBackground(color Color) {
	procClearBackground.Call(nil, unsafe.Pointer(&color))
}

// BeginDrawing sets up the canvas to start drawing.
func BeginDrawing() {
	procBeginDrawing.Call(nil)
}

// EndDrawing ends the frame and swaps buffers.
func EndDrawing() {
	procEndDrawing.Call(nil)
}

// BeginMode2D begins 2D mode with a custom camera.
func BeginMode2D(camera Camera2D) {
	procBeginMode2D.Call(nil, unsafe.Pointer(&camera))
}

// EndMode2D ends 2D mode.
func EndMode2D() {
	procEndMode2D.Call(nil)
}

// BeginMode3D begins 3D mode with a custom camera.
func BeginMode3D(camera Camera3D) {
	procBeginMode3D.Call(nil, unsafe.Pointer(&camera))
}

// EndMode3D ends 3D mode and returns to the default 2D orthographic mode.
func EndMode3D() {
	procEndMode3D.Call(nil)
}

// BeginTextureMode begins drawing to a render texture.
func BeginTextureMode(target RenderTexture2D) {
	procBeginTextureMode.Call(nil, unsafe.Pointer(&target))
}

// EndTextureMode ends drawing to a render texture.
func EndTextureMode() {
	procEndTextureMode.Call(nil)
}

// BeginShaderMode begins custom shader drawing.
func BeginShaderMode(shader Shader) {
	procBeginShaderMode.Call(nil, unsafe.Pointer(&shader))
}

// EndShaderMode ends custom shader drawing and restores the default shader.
func EndShaderMode() {
	procEndShaderMode.Call(nil)
}

// BeginBlendMode begins blending mode.
func BeginBlendMode(mode BlendMode) {
	procBeginBlendMode.Call(nil, unsafe.Pointer(&mode))
}

// EndBlendMode ends blending mode and restores alpha blending.
func EndBlendMode() {
	procEndBlendMode.Call(nil)
}

// BeginScissorMode begins scissor mode, clipping drawing to a screen area.
func BeginScissorMode(x, y, width, height int32) {
	procBeginScissorMode.Call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

// EndScissorMode ends scissor mode.
func EndScissorMode() {
	procEndScissorMode.Call(nil)
}

// BeginVrStereoMode begins stereo rendering.
func BeginVrStereoMode(config VrStereoConfig) {
	procBeginVrStereoMode.Call(nil, unsafe.Pointer(&config))
}

// EndVrStereoMode ends stereo rendering.
func EndVrStereoMode() {
	procEndVrStereoMode.Call(nil)
}

// LoadVrStereoConfig computes the stereo configuration for a VR device.
func LoadVrStereoConfig(device VrDeviceInfo) VrStereoConfig {
	var r VrStereoConfig
	procLoadVrStereoConfig.Call(unsafe.Pointer(&r), unsafe.Pointer(&device))
	return r
}

// UnloadVrStereoConfig unloads a VR stereo configuration.
func UnloadVrStereoConfig(config VrStereoConfig) {
	procUnloadVrStereoConfig.Call(nil, unsafe.Pointer(&config))
}
