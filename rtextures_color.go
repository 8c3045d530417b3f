package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	procFade                = bind.New("Fade", cColor, cColor, bind.Float)
	procColorToInt          = bind.New("ColorToInt", bind.Int, cColor)
	procColorNormalize      = bind.New("ColorNormalize", cVector4, cColor)
	procColorFromNormalized = bind.New("ColorFromNormalized", cColor, cVector4)
	procColorToHSV          = bind.New("ColorToHSV", cVector3, cColor)
	procColorFromHSV        = bind.New("ColorFromHSV", cColor, bind.Float, bind.Float, bind.Float)
	procColorTint           = bind.New("ColorTint", cColor, cColor, cColor)
	procColorBrightness     = bind.New("ColorBrightness", cColor, cColor, bind.Float)
	procColorContrast       = bind.New("ColorContrast", cColor, cColor, bind.Float)
	procColorAlpha          = bind.New("ColorAlpha", cColor, cColor, bind.Float)
	procColorAlphaBlend     = bind.New("ColorAlphaBlend", cColor, cColor, cColor, cColor)
	procGetColor            = bind.New("GetColor", cColor, bind.UInt)
	procGetPixelColor       = bind.New("GetPixelColor", cColor, bind.Ptr, bind.Int)
	procSetPixelColor       = bind.New("SetPixelColor", bind.Void, bind.Ptr, cColor, bind.Int)
	procGetPixelDataSize    = bind.New("GetPixelDataSize", bind.Int, bind.Int, bind.Int, bind.Int)
)

// Fade returns color with alpha applied, alpha in [0, 1].
func Fade(color Color, alpha float32) Color {
	var r Color
	procFade.Call(unsafe.Pointer(&r), unsafe.Pointer(&color), unsafe.Pointer(&alpha))
	return r
}

// ColorToInt returns the color as 0xRRGGBBAA.
func ColorToInt(color Color) int32 {
	var r int32
	procColorToInt.Call(unsafe.Pointer(&r), unsafe.Pointer(&color))
	return r
}

// ColorNormalize returns the color channels in [0, 1].
func ColorNormalize(color Color) Vector4 {
	var r Vector4
	procColorNormalize.Call(unsafe.Pointer(&r), unsafe.Pointer(&color))
	return r
}

// ColorFromNormalized returns the color of normalized channels.
func ColorFromNormalized(normalized Vector4) Color {
	var r Color
	procColorFromNormalized.Call(unsafe.Pointer(&r), unsafe.Pointer(&normalized))
	return r
}

// ColorToHSV returns hue [0, 360], saturation and value [0, 1].
func ColorToHSV(color Color) Vector3 {
	var r Vector3
	procColorToHSV.Call(unsafe.Pointer(&r), unsafe.Pointer(&color))
	return r
}

// ColorFromHSV returns the color of an HSV triple.
func ColorFromHSV(hue, saturation, value float32) Color {
	var r Color
	procColorFromHSV.Call(unsafe.Pointer(&r), unsafe.Pointer(&hue), unsafe.Pointer(&saturation), unsafe.Pointer(&value))
	return r
}

// ColorTint multiplies two colors.
func ColorTint(color, tint Color) Color {
	var r Color
	procColorTint.Call(unsafe.Pointer(&r), unsafe.Pointer(&color), unsafe.Pointer(&tint))
	return r
}

// ColorBrightness changes the brightness, factor in [-1, 1].
func ColorBrightness(color Color, factor float32) Color {
	var r Color
	procColorBrightness.Call(unsafe.Pointer(&r), unsafe.Pointer(&color), unsafe.Pointer(&factor))
	return r
}

// ColorContrast changes the contrast, contrast in [-1, 1].
func ColorContrast(color Color, contrast float32) Color {
	var r Color
	procColorContrast.Call(unsafe.Pointer(&r), unsafe.Pointer(&color), unsafe.Pointer(&contrast))
	return r
}

// ColorAlpha returns color with alpha applied, alpha in [0, 1].
func ColorAlpha(color Color, alpha float32) Color {
	var r Color
	procColorAlpha.Call(unsafe.Pointer(&r), unsafe.Pointer(&color), unsafe.Pointer(&alpha))
	return r
}

// ColorAlphaBlend blends src over dst, tinted.
func ColorAlphaBlend(dst, src, tint Color) Color {
	var r Color
	procColorAlphaBlend.Call(unsafe.Pointer(&r), unsafe.Pointer(&dst), unsafe.Pointer(&src), unsafe.Pointer(&tint))
	return r
}

// GetColor returns the color of 0xRRGGBBAA.
func GetColor(hexValue uint32) Color {
	var r Color
	procGetColor.Call(unsafe.Pointer(&r), unsafe.Pointer(&hexValue))
	return r
}

// GetPixelColor decodes one pixel in the given format.
func GetPixelColor(srcPtr unsafe.Pointer, format PixelFormat) Color {
	var r Color
	procGetPixelColor.Call(unsafe.Pointer(&r), unsafe.Pointer(&srcPtr), unsafe.Pointer(&format))
	return r
}

// SetPixelColor encodes one pixel in the given format.
func SetPixelColor(dstPtr unsafe.Pointer, color Color, format PixelFormat) {
	procSetPixelColor.Call(nil, unsafe.Pointer(&dstPtr), unsafe.Pointer(&color), unsafe.Pointer(&format))
}

// GetPixelDataSize returns the byte size of pixel data in the given format.
func GetPixelDataSize(width, height int32, format PixelFormat) int32 {
	var r int32
	procGetPixelDataSize.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&format))
	return r
}
