package rlgl

import (
	"unsafe"

	rl "github.com/gogpu/raylib"
	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadTextureDepth    = bind.New("rlLoadTextureDepth", bind.UInt, bind.Int, bind.Int, bind.Bool)
	procUnloadTexture       = bind.New("rlUnloadTexture", bind.Void, bind.UInt)
	procLoadFramebuffer     = bind.New("rlLoadFramebuffer", bind.UInt, bind.Int, bind.Int)
	procFramebufferAttach   = bind.New("rlFramebufferAttach", bind.Void, bind.UInt, bind.UInt, bind.Int, bind.Int, bind.Int)
	procFramebufferComplete = bind.New("rlFramebufferComplete", bind.Bool, bind.UInt)
	procUnloadFramebuffer   = bind.New("rlUnloadFramebuffer", bind.Void, bind.UInt)
	procGetPixelFormatName  = bind.New("rlGetPixelFormatName", bind.Ptr, bind.Int)
	procBindImageTexture    = bind.New("rlBindImageTexture", bind.Void, bind.UInt, bind.UInt, bind.Int, bind.Bool)
)

// LoadTextureDepth creates a depth texture or renderbuffer.
func LoadTextureDepth(width, height int32, useRenderBuffer bool) uint32 {
	var r uint32
	procLoadTextureDepth.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&useRenderBuffer))
	return r
}

// UnloadTexture deletes a texture.
func UnloadTexture(id uint32) {
	procUnloadTexture.Call(nil, unsafe.Pointer(&id))
}

// LoadFramebuffer creates an empty framebuffer.
func LoadFramebuffer(width, height int32) uint32 {
	var r uint32
	procLoadFramebuffer.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height))
	return r
}

// FramebufferAttach attaches a texture or renderbuffer to a framebuffer.
func FramebufferAttach(fboID, texID uint32, attachType FramebufferAttachType, texType FramebufferAttachTextureType, mipLevel int32) {
	procFramebufferAttach.Call(nil, unsafe.Pointer(&fboID), unsafe.Pointer(&texID), unsafe.Pointer(&attachType), unsafe.Pointer(&texType), unsafe.Pointer(&mipLevel))
}

// FramebufferComplete reports whether a framebuffer is complete.
func FramebufferComplete(id uint32) bool {
	var r bool
	procFramebufferComplete.Call(unsafe.Pointer(&r), unsafe.Pointer(&id))
	return r
}

// UnloadFramebuffer deletes a framebuffer and its attachments.
func UnloadFramebuffer(id uint32) {
	procUnloadFramebuffer.Call(nil, unsafe.Pointer(&id))
}

// GetPixelFormatName returns the name of a pixel format.
func GetPixelFormatName(format rl.PixelFormat) string {
	var r *byte
	procGetPixelFormatName.Call(unsafe.Pointer(&r), unsafe.Pointer(&format))
	return bind.GoString(r)
}

// BindImageTexture binds a texture as a compute shader image.
func BindImageTexture(id, index uint32, format rl.PixelFormat, readonly bool) {
	procBindImageTexture.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&index), unsafe.Pointer(&format), unsafe.Pointer(&readonly))
}

var (
	procLoadTexture         = bind.New("rlLoadTexture", bind.UInt, bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int)
	procLoadTextureCubemap  = bind.New("rlLoadTextureCubemap", bind.UInt, bind.Ptr, bind.Int, bind.Int)
	procUpdateTexture       = bind.New("rlUpdateTexture", bind.Void, bind.UInt, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int, bind.Ptr)
	procGetGlTextureFormats = bind.New("rlGetGlTextureFormats", bind.Void, bind.Int, bind.Ptr, bind.Ptr, bind.Ptr)
	procGenTextureMipmaps   = bind.New("rlGenTextureMipmaps", bind.Void, bind.UInt, bind.Int, bind.Int, bind.Int, bind.Ptr)
	procReadTexturePixels   = bind.New("rlReadTexturePixels", bind.Ptr, bind.UInt, bind.Int, bind.Int, bind.Int)
	procReadScreenPixels    = bind.New("rlReadScreenPixels", bind.Ptr, bind.Int, bind.Int)
)

// LoadTexture uploads pixel data in the given format and returns the
// texture id, or 0 on failure. A nil pixels slice allocates an empty
// texture.
func LoadTexture(pixels []byte, width, height int32, format rl.PixelFormat, mipmapCount int32) uint32 {
	p, _ := data(pixels)
	var id uint32
	procLoadTexture.Call(unsafe.Pointer(&id), unsafe.Pointer(&p), unsafe.Pointer(&width), unsafe.Pointer(&height),
		unsafe.Pointer(&format), unsafe.Pointer(&mipmapCount))
	return id
}

// LoadTextureCubemap uploads six faces of size x size pixels stored one
// after another in pixels.
func LoadTextureCubemap(pixels []byte, size int32, format rl.PixelFormat) uint32 {
	p, _ := data(pixels)
	var id uint32
	procLoadTextureCubemap.Call(unsafe.Pointer(&id), unsafe.Pointer(&p), unsafe.Pointer(&size), unsafe.Pointer(&format))
	return id
}

// UpdateTexture replaces a width x height region of texture id at
// (offsetX, offsetY).
func UpdateTexture(id uint32, offsetX, offsetY, width, height int32, format rl.PixelFormat, pixels []byte) {
	if len(pixels) < int(rl.GetPixelDataSize(width, height, format)) {
		return
	}
	p, _ := data(pixels)
	procUpdateTexture.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&offsetX), unsafe.Pointer(&offsetY),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&format), unsafe.Pointer(&p))
}

// GetGlTextureFormats returns the GL internal format, format and type for
// a pixel format.
func GetGlTextureFormats(format rl.PixelFormat) (internalFormat, glFormat, glType uint32) {
	pi, pf, pt := &internalFormat, &glFormat, &glType
	procGetGlTextureFormats.Call(nil, unsafe.Pointer(&format), unsafe.Pointer(&pi), unsafe.Pointer(&pf), unsafe.Pointer(&pt))
	return internalFormat, glFormat, glType
}

// GenTextureMipmaps generates mipmaps for texture id and returns the
// resulting mipmap count.
func GenTextureMipmaps(id uint32, width, height int32, format rl.PixelFormat) int32 {
	var mipmaps int32
	pm := &mipmaps
	procGenTextureMipmaps.Call(nil, unsafe.Pointer(&id), unsafe.Pointer(&width), unsafe.Pointer(&height),
		unsafe.Pointer(&format), unsafe.Pointer(&pm))
	return mipmaps
}

// ReadTexturePixels downloads the pixels of texture id.
func ReadTexturePixels(id uint32, width, height int32, format rl.PixelFormat) []byte {
	var p unsafe.Pointer
	procReadTexturePixels.Call(unsafe.Pointer(&p), unsafe.Pointer(&id), unsafe.Pointer(&width),
		unsafe.Pointer(&height), unsafe.Pointer(&format))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[byte](p, int(rl.GetPixelDataSize(width, height, format)))
	rl.MemFree(p)
	return out
}

// ReadScreenPixels reads a width x height RGBA region of the default
// framebuffer, top row first.
func ReadScreenPixels(width, height int32) []byte {
	var p unsafe.Pointer
	procReadScreenPixels.Call(unsafe.Pointer(&p), unsafe.Pointer(&width), unsafe.Pointer(&height))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[byte](p, int(width)*int(height)*4)
	rl.MemFree(p)
	return out
}
