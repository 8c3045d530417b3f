package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procGetFontDefault     = bind.New("GetFontDefault", cFont)
	procLoadFont           = bind.New("LoadFont", cFont, bind.Ptr)
	procLoadFontEx         = bind.New("LoadFontEx", cFont, bind.Ptr, bind.Int, bind.Ptr, bind.Int)
	procLoadFontFromImage  = bind.New("LoadFontFromImage", cFont, cImage, cColor, bind.Int)
	procLoadFontFromMemory = bind.New("LoadFontFromMemory", cFont, bind.Ptr, bind.Ptr, bind.Int, bind.Int, bind.Ptr, bind.Int)
	procIsFontReady        = bind.New("IsFontReady", bind.Bool, cFont)
	procLoadFontData       = bind.New("LoadFontData", bind.Ptr, bind.Ptr, bind.Int, bind.Int, bind.Ptr, bind.Int, bind.Int)
	procGenImageFontAtlas  = bind.New("GenImageFontAtlas", cImage, bind.Ptr, bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int)
	procUnloadFontData     = bind.New("UnloadFontData", bind.Void, bind.Ptr, bind.Int)
	procUnloadFont         = bind.New("UnloadFont", bind.Void, cFont)
	procExportFontAsCode   = bind.New("ExportFontAsCode", bind.Bool, cFont, bind.Ptr)

	procDrawFPS            = bind.New("DrawFPS", bind.Void, bind.Int, bind.Int)
	procDrawText           = bind.New("DrawText", bind.Void, bind.Ptr, bind.Int, bind.Int, bind.Int, cColor)
	procDrawTextEx         = bind.New("DrawTextEx", bind.Void, cFont, bind.Ptr, cVector2, bind.Float, bind.Float, cColor)
	procDrawTextPro        = bind.New("DrawTextPro", bind.Void, cFont, bind.Ptr, cVector2, cVector2, bind.Float, bind.Float, bind.Float, cColor)
	procDrawTextCodepoint  = bind.New("DrawTextCodepoint", bind.Void, cFont, bind.Int, cVector2, bind.Float, cColor)
	procDrawTextCodepoints = bind.New("DrawTextCodepoints", bind.Void, cFont, bind.Ptr, bind.Int, cVector2, bind.Float, bind.Float, cColor)
	procSetTextLineSpacing = bind.Optional("SetTextLineSpacing", bind.Void, bind.Int)
	procMeasureText        = bind.New("MeasureText", bind.Int, bind.Ptr, bind.Int)
	procMeasureTextEx      = bind.New("MeasureTextEx", cVector2, cFont, bind.Ptr, bind.Float, bind.Float)
	procGetGlyphIndex      = bind.New("GetGlyphIndex", bind.Int, cFont, bind.Int)
	procGetGlyphInfo       = bind.New("GetGlyphInfo", cGlyphInfo, cFont, bind.Int)
	procGetGlyphAtlasRec   = bind.New("GetGlyphAtlasRec", cRectangle, cFont, bind.Int)
	procImageTextEx        = bind.New("ImageTextEx", cImage, cFont, bind.Ptr, bind.Float, bind.Float, cColor)
	procImageDrawTextEx    = bind.New("ImageDrawTextEx", bind.Void, bind.Ptr, cFont, bind.Ptr, cVector2, bind.Float, bind.Float, cColor)
)

// GetFontDefault returns the built-in font. It is owned by raylib and
// UnloadFont leaves it alone.
func GetFontDefault() Font {
	var nf NativeFont
	procGetFontDefault.Call(unsafe.Pointer(&nf))
	return fontFromNative(nf)
}

// LoadFont loads a font file (TTF, OTF, BDF, FNT or an image font).
func LoadFont(fileName string) Font {
	cName := bind.CString(fileName)
	var nf NativeFont
	procLoadFont.Call(unsafe.Pointer(&nf), unsafe.Pointer(&cName))
	return fontFromNative(nf)
}

// LoadFontEx loads a font file rasterized at fontSize for the given
// codepoints. nil codepoints loads the 95 printable ASCII characters.
func LoadFontEx(fileName string, fontSize int32, codepoints []rune) Font {
	cName := bind.CString(fileName)
	pCodepoints := sliceData(codepoints)
	n := int32(len(codepoints))
	var nf NativeFont
	procLoadFontEx.Call(unsafe.Pointer(&nf), unsafe.Pointer(&cName), unsafe.Pointer(&fontSize),
		unsafe.Pointer(&pCodepoints), unsafe.Pointer(&n))
	return fontFromNative(nf)
}

// LoadFontFromImage loads an XNA-style bitmap font. key is the separator
// color between glyphs and firstChar the codepoint of the first glyph.
func LoadFontFromImage(image Image, key Color, firstChar rune) Font {
	var nf NativeFont
	procLoadFontFromImage.Call(unsafe.Pointer(&nf), unsafe.Pointer(&image), unsafe.Pointer(&key), unsafe.Pointer(&firstChar))
	return fontFromNative(nf)
}

// LoadFontFromMemory loads a font file held in memory. fileType is the
// extension including the dot, such as ".ttf".
func LoadFontFromMemory(fileType string, fileData []byte, fontSize int32, codepoints []rune) Font {
	cType := bind.CString(fileType)
	pData := sliceData(fileData)
	nData := int32(len(fileData))
	pCodepoints := sliceData(codepoints)
	n := int32(len(codepoints))
	var nf NativeFont
	procLoadFontFromMemory.Call(unsafe.Pointer(&nf), unsafe.Pointer(&cType), unsafe.Pointer(&pData), unsafe.Pointer(&nData),
		unsafe.Pointer(&fontSize), unsafe.Pointer(&pCodepoints), unsafe.Pointer(&n))
	return fontFromNative(nf)
}

// IsFontReady reports whether a font has a texture and glyphs.
func IsFontReady(font Font) bool {
	var r bool
	withFont(font, func(nf *NativeFont) {
		procIsFontReady.Call(unsafe.Pointer(&r), unsafe.Pointer(nf))
	})
	return r
}

// LoadFontData rasterizes the glyphs of a font file. The result, glyph
// images included, lives in native memory and must be released with
// UnloadFontData.
func LoadFontData(fileData []byte, fontSize int32, codepoints []rune, typ FontType) []GlyphInfo {
	pData := sliceData(fileData)
	nData := int32(len(fileData))
	pCodepoints := sliceData(codepoints)
	n := int32(len(codepoints))
	var p unsafe.Pointer
	procLoadFontData.Call(unsafe.Pointer(&p), unsafe.Pointer(&pData), unsafe.Pointer(&nData), unsafe.Pointer(&fontSize),
		unsafe.Pointer(&pCodepoints), unsafe.Pointer(&n), unsafe.Pointer(&typ))
	count := len(codepoints)
	if count == 0 {
		count = 95
	}
	return cmem.Slice[GlyphInfo](p, count)
}

// UnloadFontData releases glyphs returned by LoadFontData.
func UnloadFontData(glyphs []GlyphInfo) {
	if len(glyphs) == 0 {
		return
	}
	p := sliceData(glyphs)
	n := int32(len(glyphs))
	procUnloadFontData.Call(nil, unsafe.Pointer(&p), unsafe.Pointer(&n))
}

// GenImageFontAtlas packs glyph images into an atlas. It returns the
// atlas and the rectangle of every glyph in it. packMethod 0 is the
// default packer, 1 the skyline packer.
func GenImageFontAtlas(glyphs []GlyphInfo, fontSize, padding, packMethod int32) (Image, []Rectangle) {
	pGlyphs := sliceData(glyphs)
	var recs unsafe.Pointer
	pRecs := &recs
	n := int32(len(glyphs))
	var img Image
	procGenImageFontAtlas.Call(unsafe.Pointer(&img), unsafe.Pointer(&pGlyphs), unsafe.Pointer(&pRecs), unsafe.Pointer(&n),
		unsafe.Pointer(&fontSize), unsafe.Pointer(&padding), unsafe.Pointer(&packMethod))
	if recs == nil {
		return img, nil
	}
	out := cmem.CopyFromNative[Rectangle](recs, len(glyphs))
	MemFree(recs)
	return img, out
}

// UnloadFont releases a font and clears it. Native fonts return their
// texture and glyph data to raylib and are marked released for every copy,
// so unloading a second copy does nothing. Go-built fonts release their
// texture.
func UnloadFont(font *Font) {
	switch {
	case font.native != nil:
		if !released(font.native) {
			procUnloadFont.Call(nil, unsafe.Pointer(font.native))
			markReleased(font.native)
		}
	case font.Texture.ID != 0:
		UnloadTexture(font.Texture)
	}
	*font = Font{}
}

// ExportFontAsCode writes a font as C code.
func ExportFontAsCode(font Font, fileName string) bool {
	cName := bind.CString(fileName)
	var r bool
	withFont(font, func(nf *NativeFont) {
		procExportFontAsCode.Call(unsafe.Pointer(&r), unsafe.Pointer(nf), unsafe.Pointer(&cName))
	})
	return r
}

// DrawFPS draws the current frame rate.
func DrawFPS(posX, posY int32) {
	procDrawFPS.Call(nil, unsafe.Pointer(&posX), unsafe.Pointer(&posY))
}

// DrawText draws text with the default font.
func DrawText(text string, posX, posY, fontSize int32, color Color) {
	cText := bind.CString(text)
	procDrawText.Call(nil, unsafe.Pointer(&cText), unsafe.Pointer(&posX), unsafe.Pointer(&posY), unsafe.Pointer(&fontSize), unsafe.Pointer(&color))
}

// DrawTextEx draws text with a font.
func DrawTextEx(font Font, text string, position Vector2, fontSize, spacing float32, tint Color) {
	cText := bind.CString(text)
	withFont(font, func(nf *NativeFont) {
		procDrawTextEx.Call(nil, unsafe.Pointer(nf), unsafe.Pointer(&cText), unsafe.Pointer(&position),
			unsafe.Pointer(&fontSize), unsafe.Pointer(&spacing), unsafe.Pointer(&tint))
	})
}

// DrawTextPro draws text rotated around origin.
func DrawTextPro(font Font, text string, position, origin Vector2, rotation, fontSize, spacing float32, tint Color) {
	cText := bind.CString(text)
	withFont(font, func(nf *NativeFont) {
		procDrawTextPro.Call(nil, unsafe.Pointer(nf), unsafe.Pointer(&cText), unsafe.Pointer(&position), unsafe.Pointer(&origin),
			unsafe.Pointer(&rotation), unsafe.Pointer(&fontSize), unsafe.Pointer(&spacing), unsafe.Pointer(&tint))
	})
}

// DrawTextCodepoint draws one character.
func DrawTextCodepoint(font Font, codepoint rune, position Vector2, fontSize float32, tint Color) {
	withFont(font, func(nf *NativeFont) {
		procDrawTextCodepoint.Call(nil, unsafe.Pointer(nf), unsafe.Pointer(&codepoint), unsafe.Pointer(&position),
			unsafe.Pointer(&fontSize), unsafe.Pointer(&tint))
	})
}

// DrawTextCodepoints draws a run of characters.
func DrawTextCodepoints(font Font, codepoints []rune, position Vector2, fontSize, spacing float32, tint Color) {
	pCodepoints := sliceData(codepoints)
	n := int32(len(codepoints))
	withFont(font, func(nf *NativeFont) {
		procDrawTextCodepoints.Call(nil, unsafe.Pointer(nf), unsafe.Pointer(&pCodepoints), unsafe.Pointer(&n),
			unsafe.Pointer(&position), unsafe.Pointer(&fontSize), unsafe.Pointer(&spacing), unsafe.Pointer(&tint))
	})
}

// SetTextLineSpacing sets the vertical distance between lines of text
// containing line breaks.
func SetTextLineSpacing(spacing int32) {
	procSetTextLineSpacing.Call(nil, unsafe.Pointer(&spacing))
}

// MeasureText returns the width of text drawn with the default font.
func MeasureText(text string, fontSize int32) int32 {
	cText := bind.CString(text)
	var r int32
	procMeasureText.Call(unsafe.Pointer(&r), unsafe.Pointer(&cText), unsafe.Pointer(&fontSize))
	return r
}

// MeasureTextEx returns the size of text drawn with a font.
func MeasureTextEx(font Font, text string, fontSize, spacing float32) Vector2 {
	cText := bind.CString(text)
	var r Vector2
	withFont(font, func(nf *NativeFont) {
		procMeasureTextEx.Call(unsafe.Pointer(&r), unsafe.Pointer(nf), unsafe.Pointer(&cText),
			unsafe.Pointer(&fontSize), unsafe.Pointer(&spacing))
	})
	return r
}

// GetGlyphIndex returns the glyph index of a codepoint, or the index of
// '?' when the font lacks it.
func GetGlyphIndex(font Font, codepoint rune) int32 {
	var r int32
	withFont(font, func(nf *NativeFont) {
		procGetGlyphIndex.Call(unsafe.Pointer(&r), unsafe.Pointer(nf), unsafe.Pointer(&codepoint))
	})
	return r
}

// GetGlyphInfo returns the glyph of a codepoint, falling back to '?'.
func GetGlyphInfo(font Font, codepoint rune) GlyphInfo {
	var r GlyphInfo
	withFont(font, func(nf *NativeFont) {
		procGetGlyphInfo.Call(unsafe.Pointer(&r), unsafe.Pointer(nf), unsafe.Pointer(&codepoint))
	})
	return r
}

// GetGlyphAtlasRec returns the atlas rectangle of a codepoint, falling
// back to '?'.
func GetGlyphAtlasRec(font Font, codepoint rune) Rectangle {
	var r Rectangle
	withFont(font, func(nf *NativeFont) {
		procGetGlyphAtlasRec.Call(unsafe.Pointer(&r), unsafe.Pointer(nf), unsafe.Pointer(&codepoint))
	})
	return r
}

// ImageTextEx renders text with a font into a new image.
func ImageTextEx(font Font, text string, fontSize, spacing float32, tint Color) Image {
	cText := bind.CString(text)
	var r Image
	withFont(font, func(nf *NativeFont) {
		procImageTextEx.Call(unsafe.Pointer(&r), unsafe.Pointer(nf), unsafe.Pointer(&cText),
			unsafe.Pointer(&fontSize), unsafe.Pointer(&spacing), unsafe.Pointer(&tint))
	})
	return r
}

// ImageDrawTextEx draws text with a font into an image.
func ImageDrawTextEx(dst *Image, font Font, text string, position Vector2, fontSize, spacing float32, tint Color) {
	cText := bind.CString(text)
	withFont(font, func(nf *NativeFont) {
		procImageDrawTextEx.Call(nil, unsafe.Pointer(&dst), unsafe.Pointer(nf), unsafe.Pointer(&cText),
			unsafe.Pointer(&position), unsafe.Pointer(&fontSize), unsafe.Pointer(&spacing), unsafe.Pointer(&tint))
	})
}
