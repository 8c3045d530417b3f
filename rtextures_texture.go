package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadTexture          = bind.New("LoadTexture", cTexture, bind.Ptr)
	procLoadTextureFromImage = bind.New("LoadTextureFromImage", cTexture, cImage)
	procLoadTextureCubemap   = bind.New("LoadTextureCubemap", cTexture, cImage, bind.Int)
	procLoadRenderTexture    = bind.New("LoadRenderTexture", cRenderTexture, bind.Int, bind.Int)
	procIsTextureReady       = bind.New("IsTextureReady", bind.Bool, cTexture)
	procUnloadTexture        = bind.New("UnloadTexture", bind.Void, cTexture)
	procIsRenderTextureReady = bind.New("IsRenderTextureReady", bind.Bool, cRenderTexture)
	procUnloadRenderTexture  = bind.New("UnloadRenderTexture", bind.Void, cRenderTexture)
	procUpdateTexture        = bind.New("UpdateTexture", bind.Void, cTexture, bind.Ptr)
	procUpdateTextureRec     = bind.New("UpdateTextureRec", bind.Void, cTexture, cRectangle, bind.Ptr)
	procGenTextureMipmaps    = bind.New("GenTextureMipmaps", bind.Void, bind.Ptr)
	procSetTextureFilter     = bind.New("SetTextureFilter", bind.Void, cTexture, bind.Int)
	procSetTextureWrap       = bind.New("SetTextureWrap", bind.Void, cTexture, bind.Int)
	procDrawTexture          = bind.New("DrawTexture", bind.Void, cTexture, bind.Int, bind.Int, cColor)
	procDrawTextureV         = bind.New("DrawTextureV", bind.Void, cTexture, cVector2, cColor)
	procDrawTextureEx        = bind.New("DrawTextureEx", bind.Void, cTexture, cVector2, bind.Float, bind.Float, cColor)
	procDrawTextureRec       = bind.New("DrawTextureRec", bind.Void, cTexture, cRectangle, cVector2, cColor)
	procDrawTexturePro       = bind.New("DrawTexturePro", bind.Void, cTexture, cRectangle, cRectangle, cVector2, bind.Float, cColor)
	procDrawTextureNPatch    = bind.New("DrawTextureNPatch", bind.Void, cTexture, cNPatchInfo, cRectangle, cVector2, bind.Float, cColor)
)

// LoadTexture loads a texture into GPU memory.
func LoadTexture(fileName string) Texture2D {
	cFileName := bind.CString(fileName)
	var r Texture2D
	procLoadTexture.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// LoadTextureFromImage uploads an image to the GPU.
func LoadTextureFromImage(image Image) Texture2D {
	var r Texture2D
	procLoadTextureFromImage.Call(unsafe.Pointer(&r), unsafe.Pointer(&image))
	return r
}

// LoadTextureCubemap loads a cubemap from an image laid out as layout.
func LoadTextureCubemap(image Image, layout CubemapLayout) TextureCubemap {
	var r TextureCubemap
	procLoadTextureCubemap.Call(unsafe.Pointer(&r), unsafe.Pointer(&image), unsafe.Pointer(&layout))
	return r
}

// LoadRenderTexture creates a framebuffer to render into.
func LoadRenderTexture(width, height int32) RenderTexture2D {
	var r RenderTexture2D
	procLoadRenderTexture.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height))
	return r
}

// IsTextureReady reports whether a texture is loaded on the GPU.
func IsTextureReady(texture Texture2D) bool {
	var r bool
	procIsTextureReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&texture))
	return r
}

// UnloadTexture releases a texture from GPU memory.
func UnloadTexture(texture Texture2D) {
	procUnloadTexture.Call(nil, unsafe.Pointer(&texture))
}

// IsRenderTextureReady reports whether a render texture is complete.
func IsRenderTextureReady(target RenderTexture2D) bool {
	var r bool
	procIsRenderTextureReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&target))
	return r
}

// UnloadRenderTexture releases a render texture from GPU memory.
func UnloadRenderTexture(target RenderTexture2D) {
	procUnloadRenderTexture.Call(nil, unsafe.Pointer(&target))
}

// UpdateTexture replaces the texture pixels. pixels must match the texture size and format.
func UpdateTexture(texture Texture2D, pixels unsafe.Pointer) {
	procUpdateTexture.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&pixels))
}

// UpdateTextureRec replaces the pixels of a texture area.
func UpdateTextureRec(texture Texture2D, rec Rectangle, pixels unsafe.Pointer) {
	procUpdateTextureRec.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&rec), unsafe.Pointer(&pixels))
}

// GenTextureMipmaps generates the mipmap levels of a texture.
func GenTextureMipmaps(texture *Texture2D) {
	procGenTextureMipmaps.Call(nil, unsafe.Pointer(&texture))
}

// SetTextureFilter sets the texture scaling filter.
func SetTextureFilter(texture Texture2D, filter TextureFilter) {
	procSetTextureFilter.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&filter))
}

// SetTextureWrap sets the texture wrapping mode.
func SetTextureWrap(texture Texture2D, wrap TextureWrap) {
	procSetTextureWrap.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&wrap))
}

// DrawTexture draws a texture.
func DrawTexture(texture Texture2D, posX, posY int32, tint Color) {
	procDrawTexture.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&tint))
}

// DrawTextureV draws a texture.
func DrawTextureV(texture Texture2D, position Vector2, tint Color) {
	procDrawTextureV.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&position), unsafe.Pointer(&tint))
}

// DrawTextureEx draws a rotated and scaled texture.
func DrawTextureEx(texture Texture2D, position Vector2, rotation, scale float32, tint Color) {
	procDrawTextureEx.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&position), unsafe.Pointer(&rotation), unsafe.Pointer(&scale), unsafe.Pointer(&tint))
}

// DrawTextureRec draws part of a texture.
func DrawTextureRec(texture Texture2D, source Rectangle, position Vector2, tint Color) {
	procDrawTextureRec.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&source), unsafe.Pointer(&position), unsafe.Pointer(&tint))
}

// DrawTexturePro draws part of a texture into dest, rotated around origin.
func DrawTexturePro(texture Texture2D, source, dest Rectangle, origin Vector2, rotation float32, tint Color) {
	procDrawTexturePro.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&source), unsafe.Pointer(&dest), unsafe.Pointer(&origin), unsafe.Pointer(&rotation), unsafe.Pointer(&tint))
}

// DrawTextureNPatch draws a texture that stretches by its n-patch layout.
func DrawTextureNPatch(texture Texture2D, nPatchInfo NPatchInfo, dest Rectangle, origin Vector2, rotation float32, tint Color) {
	procDrawTextureNPatch.Call(nil, unsafe.Pointer(&texture), unsafe.Pointer(&nPatchInfo), unsafe.Pointer(&dest), unsafe.Pointer(&origin), unsafe.Pointer(&rotation), unsafe.Pointer(&tint))
}

// Pixel is a pixel value type accepted for texture uploads.
type Pixel interface {
	Color | uint8 | uint16 | float32 | Vector2 | Vector3 | Vector4
}

// UpdateTexturePixels replaces the texture pixels from a Go slice. The
// slice must cover the whole texture in its pixel format.
func UpdateTexturePixels[T Pixel](texture Texture2D, pixels []T) {
	if len(pixels) == 0 {
		return
	}
	UpdateTexture(texture, sliceData(pixels))
}

// UpdateTextureRecPixels replaces the pixels of a texture area from a Go
// slice.
func UpdateTextureRecPixels[T Pixel](texture Texture2D, rec Rectangle, pixels []T) {
	if len(pixels) == 0 {
		return
	}
	UpdateTextureRec(texture, rec, sliceData(pixels))
}
