package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procLoadImage               = bind.New("LoadImage", cImage, bind.Ptr)
	procLoadImageRaw            = bind.New("LoadImageRaw", cImage, bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int)
	procLoadImageSvg            = bind.Optional("LoadImageSvg", cImage, bind.Ptr, bind.Int, bind.Int)
	procLoadImageFromTexture    = bind.New("LoadImageFromTexture", cImage, cTexture)
	procLoadImageFromScreen     = bind.New("LoadImageFromScreen", cImage)
	procIsImageReady            = bind.New("IsImageReady", bind.Bool, cImage)
	procUnloadImage             = bind.New("UnloadImage", bind.Void, cImage)
	procExportImage             = bind.New("ExportImage", bind.Bool, cImage, bind.Ptr)
	procExportImageAsCode       = bind.New("ExportImageAsCode", bind.Bool, cImage, bind.Ptr)
	procGenImageColor           = bind.New("GenImageColor", cImage, bind.Int, bind.Int, cColor)
	procGenImageGradientLinear  = bind.New("GenImageGradientLinear", cImage, bind.Int, bind.Int, bind.Int, cColor, cColor)
	procGenImageGradientRadial  = bind.New("GenImageGradientRadial", cImage, bind.Int, bind.Int, bind.Float, cColor, cColor)
	procGenImageGradientSquare  = bind.New("GenImageGradientSquare", cImage, bind.Int, bind.Int, bind.Float, cColor, cColor)
	procGenImageChecked         = bind.New("GenImageChecked", cImage, bind.Int, bind.Int, bind.Int, bind.Int, cColor, cColor)
	procGenImageWhiteNoise      = bind.New("GenImageWhiteNoise", cImage, bind.Int, bind.Int, bind.Float)
	procGenImagePerlinNoise     = bind.New("GenImagePerlinNoise", cImage, bind.Int, bind.Int, bind.Int, bind.Int, bind.Float)
	procGenImageCellular        = bind.New("GenImageCellular", cImage, bind.Int, bind.Int, bind.Int)
	procGenImageText            = bind.New("GenImageText", cImage, bind.Int, bind.Int, bind.Ptr)
	procImageCopy               = bind.New("ImageCopy", cImage, cImage)
	procImageFromImage          = bind.New("ImageFromImage", cImage, cImage, cRectangle)
	procImageText               = bind.New("ImageText", cImage, bind.Ptr, bind.Int, cColor)
	procImageFormat             = bind.New("ImageFormat", bind.Void, bind.Ptr, bind.Int)
	procImageToPOT              = bind.New("ImageToPOT", bind.Void, bind.Ptr, cColor)
	procImageCrop               = bind.New("ImageCrop", bind.Void, bind.Ptr, cRectangle)
	procImageAlphaCrop          = bind.New("ImageAlphaCrop", bind.Void, bind.Ptr, bind.Float)
	procImageAlphaClear         = bind.New("ImageAlphaClear", bind.Void, bind.Ptr, cColor, bind.Float)
	procImageAlphaMask          = bind.New("ImageAlphaMask", bind.Void, bind.Ptr, cImage)
	procImageAlphaPremultiply   = bind.New("ImageAlphaPremultiply", bind.Void, bind.Ptr)
	procImageBlurGaussian       = bind.New("ImageBlurGaussian", bind.Void, bind.Ptr, bind.Int)
	procImageResize             = bind.New("ImageResize", bind.Void, bind.Ptr, bind.Int, bind.Int)
	procImageResizeNN           = bind.New("ImageResizeNN", bind.Void, bind.Ptr, bind.Int, bind.Int)
	procImageResizeCanvas       = bind.New("ImageResizeCanvas", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int, cColor)
	procImageMipmaps            = bind.New("ImageMipmaps", bind.Void, bind.Ptr)
	procImageDither             = bind.New("ImageDither", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int)
	procImageFlipVertical       = bind.New("ImageFlipVertical", bind.Void, bind.Ptr)
	procImageFlipHorizontal     = bind.New("ImageFlipHorizontal", bind.Void, bind.Ptr)
	procImageRotate             = bind.Optional("ImageRotate", bind.Void, bind.Ptr, bind.Int)
	procImageRotateCW           = bind.New("ImageRotateCW", bind.Void, bind.Ptr)
	procImageRotateCCW          = bind.New("ImageRotateCCW", bind.Void, bind.Ptr)
	procImageColorTint          = bind.New("ImageColorTint", bind.Void, bind.Ptr, cColor)
	procImageColorInvert        = bind.New("ImageColorInvert", bind.Void, bind.Ptr)
	procImageColorGrayscale     = bind.New("ImageColorGrayscale", bind.Void, bind.Ptr)
	procImageColorContrast      = bind.New("ImageColorContrast", bind.Void, bind.Ptr, bind.Float)
	procImageColorBrightness    = bind.New("ImageColorBrightness", bind.Void, bind.Ptr, bind.Int)
	procImageColorReplace       = bind.New("ImageColorReplace", bind.Void, bind.Ptr, cColor, cColor)
	procGetImageAlphaBorder     = bind.New("GetImageAlphaBorder", cRectangle, cImage, bind.Float)
	procGetImageColor           = bind.New("GetImageColor", cColor, cImage, bind.Int, bind.Int)
	procImageClearBackground    = bind.New("ImageClearBackground", bind.Void, bind.Ptr, cColor)
	procImageDrawPixel          = bind.New("ImageDrawPixel", bind.Void, bind.Ptr, bind.Int, bind.Int, cColor)
	procImageDrawPixelV         = bind.New("ImageDrawPixelV", bind.Void, bind.Ptr, cVector2, cColor)
	procImageDrawLine           = bind.New("ImageDrawLine", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int, cColor)
	procImageDrawLineV          = bind.New("ImageDrawLineV", bind.Void, bind.Ptr, cVector2, cVector2, cColor)
	procImageDrawCircle         = bind.New("ImageDrawCircle", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int, cColor)
	procImageDrawCircleV        = bind.New("ImageDrawCircleV", bind.Void, bind.Ptr, cVector2, bind.Int, cColor)
	procImageDrawCircleLines    = bind.Optional("ImageDrawCircleLines", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int, cColor)
	procImageDrawCircleLinesV   = bind.Optional("ImageDrawCircleLinesV", bind.Void, bind.Ptr, cVector2, bind.Int, cColor)
	procImageDrawRectangle      = bind.New("ImageDrawRectangle", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int, cColor)
	procImageDrawRectangleV     = bind.New("ImageDrawRectangleV", bind.Void, bind.Ptr, cVector2, cVector2, cColor)
	procImageDrawRectangleRec   = bind.New("ImageDrawRectangleRec", bind.Void, bind.Ptr, cRectangle, cColor)
	procImageDrawRectangleLines = bind.New("ImageDrawRectangleLines", bind.Void, bind.Ptr, cRectangle, bind.Int, cColor)
	procImageDraw               = bind.New("ImageDraw", bind.Void, bind.Ptr, cImage, cRectangle, cRectangle, cColor)
	procImageDrawText           = bind.New("ImageDrawText", bind.Void, bind.Ptr, bind.Ptr, bind.Int, bind.Int, bind.Int, cColor)
)

// LoadImage loads an image into CPU memory.
func LoadImage(fileName string) Image {
	cFileName := bind.CString(fileName)
	var r Image
	procLoadImage.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName))
	return r
}

// LoadImageRaw loads an image from raw pixel data.
func LoadImageRaw(fileName string, width, height int32, format PixelFormat, headerSize int32) Image {
	cFileName := bind.CString(fileName)
	var r Image
	procLoadImageRaw.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileName), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&format), unsafe.Pointer(&headerSize))
	return r
}

// LoadImageSvg rasterizes an SVG file or SVG source at the given size.
func LoadImageSvg(fileNameOrString string, width, height int32) Image {
	cFileNameOrString := bind.CString(fileNameOrString)
	var r Image
	procLoadImageSvg.Call(unsafe.Pointer(&r), unsafe.Pointer(&cFileNameOrString), unsafe.Pointer(&width), unsafe.Pointer(&height))
	return r
}

// LoadImageFromTexture downloads a texture from the GPU.
func LoadImageFromTexture(texture Texture2D) Image {
	var r Image
	procLoadImageFromTexture.Call(unsafe.Pointer(&r), unsafe.Pointer(&texture))
	return r
}

// LoadImageFromScreen captures the screen framebuffer.
func LoadImageFromScreen() Image {
	var r Image
	procLoadImageFromScreen.Call(unsafe.Pointer(&r))
	return r
}

// IsImageReady reports whether an image holds data.
func IsImageReady(image Image) bool {
	var r bool
	procIsImageReady.Call(unsafe.Pointer(&r), unsafe.Pointer(&image))
	return r
}

// UnloadImage releases an image's pixel data.
func UnloadImage(image Image) {
	procUnloadImage.Call(nil, unsafe.Pointer(&image))
}

// ExportImage saves an image to a file.
func ExportImage(image Image, fileName string) bool {
	cFileName := bind.CString(fileName)
	var r bool
	procExportImage.Call(unsafe.Pointer(&r), unsafe.Pointer(&image), unsafe.Pointer(&cFileName))
	return r
}

// ExportImageAsCode saves an image as C code.
func ExportImageAsCode(image Image, fileName string) bool {
	cFileName := bind.CString(fileName)
	var r bool
	procExportImageAsCode.Call(unsafe.Pointer(&r), unsafe.Pointer(&image), unsafe.Pointer(&cFileName))
	return r
}

// GenImageColor generates a plain color image.
func GenImageColor(width, height int32, color Color) Image {
	var r Image
	procGenImageColor.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&color))
	return r
}

// GenImageGradientLinear generates a linear gradient. direction is in degrees, 0 being vertical.
func GenImageGradientLinear(width, height, direction int32, start, end Color) Image {
	var r Image
	procGenImageGradientLinear.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&direction), unsafe.Pointer(&start), unsafe.Pointer(&end))
	return r
}

// GenImageGradientRadial generates a radial gradient.
func GenImageGradientRadial(width, height int32, density float32, inner, outer Color) Image {
	var r Image
	procGenImageGradientRadial.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&density), unsafe.Pointer(&inner), unsafe.Pointer(&outer))
	return r
}

// GenImageGradientSquare generates a square gradient.
func GenImageGradientSquare(width, height int32, density float32, inner, outer Color) Image {
	var r Image
	procGenImageGradientSquare.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&density), unsafe.Pointer(&inner), unsafe.Pointer(&outer))
	return r
}

// GenImageChecked generates a checkerboard.
func GenImageChecked(width, height, checksX, checksY int32, col1, col2 Color) Image {
	var r Image
	procGenImageChecked.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&checksX), unsafe.Pointer(&checksY), unsafe.Pointer(&col1), unsafe.Pointer(&col2))
	return r
}

// GenImageWhiteNoise generates white noise.
func GenImageWhiteNoise(width, height int32, factor float32) Image {
	var r Image
	procGenImageWhiteNoise.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&factor))
	return r
}

// GenImagePerlinNoise generates Perlin noise.
func GenImagePerlinNoise(width, height, offsetX, offsetY int32, scale float32) Image {
	var r Image
	procGenImagePerlinNoise.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&offsetX), unsafe.Pointer(&offsetY), unsafe.Pointer(&scale))
	return r
}

// GenImageCellular generates cellular noise. Bigger tiles give bigger cells.
func GenImageCellular(width, height, tileSize int32) Image {
	var r Image
	procGenImageCellular.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&tileSize))
	return r
}

// GenImageText generates a grayscale image from text bytes.
func GenImageText(width, height int32, text string) Image {
	cText := bind.CString(text)
	var r Image
	procGenImageText.Call(unsafe.Pointer(&r), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&cText))
	return r
}

// ImageCopy duplicates an image.
func ImageCopy(image Image) Image {
	var r Image
	procImageCopy.Call(unsafe.Pointer(&r), unsafe.Pointer(&image))
	return r
}

// ImageFromImage copies part of an image into a new image.
func ImageFromImage(image Image, rec Rectangle) Image {
	var r Image
	procImageFromImage.Call(unsafe.Pointer(&r), unsafe.Pointer(&image), unsafe.Pointer(&rec))
	return r
}

// ImageText renders text with the default font into a new image.
func ImageText(text string, fontSize int32, color Color) Image {
	cText := bind.CString(text)
	var r Image
	procImageText.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText), unsafe.Pointer(&fontSize), unsafe.Pointer(&color))
	return r
}

// ImageFormat converts an image to another pixel format.
func ImageFormat(image *Image, newFormat PixelFormat) {
	procImageFormat.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&newFormat))
}

// ImageToPOT grows an image to power-of-two dimensions.
func ImageToPOT(image *Image, fill Color) {
	procImageToPOT.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&fill))
}

// ImageCrop crops an image.
func ImageCrop(image *Image, crop Rectangle) {
	procImageCrop.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&crop))
}

// ImageAlphaCrop crops an image to the bounds of its alpha above threshold.
func ImageAlphaCrop(image *Image, threshold float32) {
	procImageAlphaCrop.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&threshold))
}

// ImageAlphaClear replaces pixels with alpha below threshold by color.
func ImageAlphaClear(image *Image, color Color, threshold float32) {
	procImageAlphaClear.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&color), unsafe.Pointer(&threshold))
}

// ImageAlphaMask applies an alpha mask.
func ImageAlphaMask(image *Image, alphaMask Image) {
	procImageAlphaMask.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&alphaMask))
}

// ImageAlphaPremultiply premultiplies alpha.
func ImageAlphaPremultiply(image *Image) {
	procImageAlphaPremultiply.Call(nil, unsafe.Pointer(&image))
}

// ImageBlurGaussian applies a box-approximated Gaussian blur.
func ImageBlurGaussian(image *Image, blurSize int32) {
	procImageBlurGaussian.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&blurSize))
}

// ImageResize resizes an image with bicubic scaling.
func ImageResize(image *Image, newWidth, newHeight int32) {
	procImageResize.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&newWidth), unsafe.Pointer(&newHeight))
}

// ImageResizeNN resizes an image with nearest-neighbor scaling.
func ImageResizeNN(image *Image, newWidth, newHeight int32) {
	procImageResizeNN.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&newWidth), unsafe.Pointer(&newHeight))
}

// ImageResizeCanvas resizes the canvas and fills the new area.
func ImageResizeCanvas(image *Image, newWidth, newHeight, offsetX, offsetY int32, fill Color) {
	procImageResizeCanvas.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&newWidth), unsafe.Pointer(&newHeight), unsafe.Pointer(&offsetX), unsafe.Pointer(&offsetY), unsafe.Pointer(&fill))
}

// ImageMipmaps computes all mipmap levels.
func ImageMipmaps(image *Image) {
	procImageMipmaps.Call(nil, unsafe.Pointer(&image))
}

// ImageDither dithers to 16 bpp or less with Floyd-Steinberg.
func ImageDither(image *Image, rBpp, gBpp, bBpp, aBpp int32) {
	procImageDither.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&rBpp), unsafe.Pointer(&gBpp), unsafe.Pointer(&bBpp), unsafe.Pointer(&aBpp))
}

// ImageFlipVertical flips an image vertically.
func ImageFlipVertical(image *Image) {
	procImageFlipVertical.Call(nil, unsafe.Pointer(&image))
}

// ImageFlipHorizontal flips an image horizontally.
func ImageFlipHorizontal(image *Image) {
	procImageFlipHorizontal.Call(nil, unsafe.Pointer(&image))
}

// ImageRotate rotates an image by degrees, from -359 to 359.
func ImageRotate(image *Image, degrees int32) {
	procImageRotate.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&degrees))
}

// ImageRotateCW rotates an image 90 degrees clockwise.
func ImageRotateCW(image *Image) {
	procImageRotateCW.Call(nil, unsafe.Pointer(&image))
}

// ImageRotateCCW rotates an image 90 degrees counter-clockwise.
func ImageRotateCCW(image *Image) {
	procImageRotateCCW.Call(nil, unsafe.Pointer(&image))
}

// ImageColorTint tints an image.
func ImageColorTint(image *Image, color Color) {
	procImageColorTint.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&color))
}

// ImageColorInvert inverts the colors of an image.
func ImageColorInvert(image *Image) {
	procImageColorInvert.Call(nil, unsafe.Pointer(&image))
}

// ImageColorGrayscale converts an image to grayscale.
func ImageColorGrayscale(image *Image) {
	procImageColorGrayscale.Call(nil, unsafe.Pointer(&image))
}

// ImageColorContrast changes the contrast, from -100 to 100.
func ImageColorContrast(image *Image, contrast float32) {
	procImageColorContrast.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&contrast))
}

// ImageColorBrightness changes the brightness, from -255 to 255.
func ImageColorBrightness(image *Image, brightness int32) {
	procImageColorBrightness.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&brightness))
}

// ImageColorReplace replaces every pixel of one color.
func ImageColorReplace(image *Image, color, replace Color) {
	procImageColorReplace.Call(nil, unsafe.Pointer(&image), unsafe.Pointer(&color), unsafe.Pointer(&replace))
}

// GetImageAlphaBorder returns the bounds of the pixels with alpha above threshold.
func GetImageAlphaBorder(image Image, threshold float32) Rectangle {
	var r Rectangle
	procGetImageAlphaBorder.Call(unsafe.Pointer(&r), unsafe.Pointer(&image), unsafe.Pointer(&threshold))
	return r
}

// GetImageColor returns the color of one pixel.
func GetImageColor(image Image, x, y int32) Color {
	var r Color
	procGetImageColor.Call(unsafe.Pointer(&r), unsafe.Pointer(&image), unsafe.Pointer(&x), unsafe.Pointer(&y))
	return r
}

// ImageClearBackground fills an image with color.
func ImageClearBackground(dst *Image, color Color) {
	procImageClearBackground.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&color))
}

// ImageDrawPixel draws a pixel into an image.
func ImageDrawPixel(dst *Image, posX, posY int32, color Color) {
	procImageDrawPixel.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&color))
}

// ImageDrawPixelV draws a pixel into an image.
func ImageDrawPixelV(dst *Image, position Vector2, color Color) {
	procImageDrawPixelV.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&position), unsafe.Pointer(&color))
}

// ImageDrawLine draws a line into an image.
func ImageDrawLine(dst *Image, startPosX, startPosY, endPosX, endPosY int32, color Color) {
	procImageDrawLine.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&startPosX), unsafe.Pointer(&startPosY), unsafe.Pointer(&endPosX), unsafe.Pointer(&endPosY), unsafe.Pointer(&color))
}

// ImageDrawLineV draws a line into an image.
func ImageDrawLineV(dst *Image, start, end Vector2, color Color) {
	procImageDrawLineV.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&start), unsafe.Pointer(&end), unsafe.Pointer(&color))
}

// ImageDrawCircle draws a filled circle into an image.
func ImageDrawCircle(dst *Image, centerX, centerY, radius int32, color Color) {
	procImageDrawCircle.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&centerX), unsafe.Pointer(&centerY), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// ImageDrawCircleV draws a filled circle into an image.
func ImageDrawCircleV(dst *Image, center Vector2, radius int32, color Color) {
	procImageDrawCircleV.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// ImageDrawCircleLines draws a circle outline into an image.
func ImageDrawCircleLines(dst *Image, centerX, centerY, radius int32, color Color) {
	procImageDrawCircleLines.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&centerX), unsafe.Pointer(&centerY), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// ImageDrawCircleLinesV draws a circle outline into an image.
func ImageDrawCircleLinesV(dst *Image, center Vector2, radius int32, color Color) {
	procImageDrawCircleLinesV.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&center), unsafe.Pointer(&radius), unsafe.Pointer(&color))
}

// ImageDrawRectangle draws a filled rectangle into an image.
func ImageDrawRectangle(dst *Image, posX, posY, width, height int32, color Color) {
	procImageDrawRectangle.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&color))
}

// ImageDrawRectangleV draws a filled rectangle into an image.
func ImageDrawRectangleV(dst *Image, position, size Vector2, color Color) {
	procImageDrawRectangleV.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&position), unsafe.Pointer(&size), unsafe.Pointer(&color))
}

// ImageDrawRectangleRec draws a filled rectangle into an image.
func ImageDrawRectangleRec(dst *Image, rec Rectangle, color Color) {
	procImageDrawRectangleRec.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&rec), unsafe.Pointer(&color))
}

// ImageDrawRectangleLines draws a rectangle outline into an image.
func ImageDrawRectangleLines(dst *Image, rec Rectangle, thick int32, color Color) {
	procImageDrawRectangleLines.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&rec), unsafe.Pointer(&thick), unsafe.Pointer(&color))
}

// ImageDraw draws part of src into dst, scaled and tinted.
func ImageDraw(dst *Image, src Image, srcRec, dstRec Rectangle, tint Color) {
	procImageDraw.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&src), unsafe.Pointer(&srcRec), unsafe.Pointer(&dstRec), unsafe.Pointer(&tint))
}

// ImageDrawText draws text with the default font into an image.
func ImageDrawText(dst *Image, text string, posX, posY, fontSize int32, color Color) {
	cText := bind.CString(text)
	procImageDrawText.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(&cText), unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&fontSize), unsafe.Pointer(&color))
}

var (
	procLoadImageAnim       = bind.New("LoadImageAnim", cImage, bind.Ptr, bind.Ptr)
	procLoadImageFromMemory = bind.New("LoadImageFromMemory", cImage, bind.Ptr, bind.Ptr, bind.Int)
	procExportImageToMemory = bind.Optional("ExportImageToMemory", bind.Ptr, cImage, bind.Ptr, bind.Ptr)
	procLoadImageColors     = bind.New("LoadImageColors", bind.Ptr, cImage)
	procUnloadImageColors   = bind.New("UnloadImageColors", bind.Void, bind.Ptr)
	procLoadImagePalette    = bind.New("LoadImagePalette", bind.Ptr, cImage, bind.Int, bind.Ptr)
	procUnloadImagePalette  = bind.New("UnloadImagePalette", bind.Void, bind.Ptr)
)

// LoadImageAnim loads an animated GIF. The frames are stacked vertically
// in the returned image.
func LoadImageAnim(fileName string) (img Image, frames int32) {
	cName := bind.CString(fileName)
	pFrames := &frames
	procLoadImageAnim.Call(unsafe.Pointer(&img), unsafe.Pointer(&cName), unsafe.Pointer(&pFrames))
	return img, frames
}

// LoadImageFromMemory decodes an image file held in memory. fileType is
// the extension including the dot, such as ".png".
func LoadImageFromMemory(fileType string, fileData []byte) Image {
	cType := bind.CString(fileType)
	pData := sliceData(fileData)
	n := int32(len(fileData))
	var r Image
	procLoadImageFromMemory.Call(unsafe.Pointer(&r), unsafe.Pointer(&cType), unsafe.Pointer(&pData), unsafe.Pointer(&n))
	return r
}

// ExportImageToMemory encodes an image into a file format such as ".png".
// It returns nil when encoding fails.
func ExportImageToMemory(image Image, fileType string) []byte {
	cType := bind.CString(fileType)
	var size int32
	pSize := &size
	var p unsafe.Pointer
	procExportImageToMemory.Call(unsafe.Pointer(&p), unsafe.Pointer(&image), unsafe.Pointer(&cType), unsafe.Pointer(&pSize))
	if p == nil {
		return nil
	}
	out := cmem.CopyFromNative[byte](p, int(size))
	MemFree(p)
	return out
}

// LoadImageColors returns the pixels of an image as RGBA colors, row by
// row.
func LoadImageColors(image Image) []Color {
	var p unsafe.Pointer
	procLoadImageColors.Call(unsafe.Pointer(&p), unsafe.Pointer(&image))
	if p == nil {
		return nil
	}
	colors := cmem.CopyFromNative[Color](p, int(image.Width)*int(image.Height))
	procUnloadImageColors.Call(nil, unsafe.Pointer(&p))
	return colors
}

// LoadImagePalette returns up to maxPaletteSize distinct colors of an
// image.
func LoadImagePalette(image Image, maxPaletteSize int32) []Color {
	var count int32
	pCount := &count
	var p unsafe.Pointer
	procLoadImagePalette.Call(unsafe.Pointer(&p), unsafe.Pointer(&image), unsafe.Pointer(&maxPaletteSize), unsafe.Pointer(&pCount))
	if p == nil {
		return nil
	}
	colors := cmem.CopyFromNative[Color](p, int(count))
	procUnloadImagePalette.Call(nil, unsafe.Pointer(&p))
	return colors
}
