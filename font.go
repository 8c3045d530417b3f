package raylib

import "unsafe"

// GlyphTable holds the glyphs of a font and their atlas rectangles. Entry
// i of both columns describes the same character, so the columns always
// have the same length.
//
// The zero value is an empty table.
type GlyphTable struct {
	glyphs []GlyphInfo
	recs   []Rectangle
}

// NewGlyphTable copies glyphs and recs into a table. It fails with a
// *GlyphCountError when their lengths differ.
func NewGlyphTable(glyphs []GlyphInfo, recs []Rectangle) (GlyphTable, error) {
	if len(glyphs) != len(recs) {
		return GlyphTable{}, &GlyphCountError{Glyphs: len(glyphs), Recs: len(recs)}
	}
	return GlyphTable{
		glyphs: append([]GlyphInfo(nil), glyphs...),
		recs:   append([]Rectangle(nil), recs...),
	}, nil
}

// Len is the number of glyphs.
func (t GlyphTable) Len() int { return len(t.glyphs) }

// Glyph returns glyph i.
func (t GlyphTable) Glyph(i int) GlyphInfo { return t.glyphs[i] }

// Rec returns the atlas rectangle of glyph i.
func (t GlyphTable) Rec(i int) Rectangle { return t.recs[i] }

// Glyphs returns a copy of the glyph column.
func (t GlyphTable) Glyphs() []GlyphInfo { return append([]GlyphInfo(nil), t.glyphs...) }

// Recs returns a copy of the rectangle column.
func (t GlyphTable) Recs() []Rectangle { return append([]Rectangle(nil), t.recs...) }

// Append adds one glyph and its rectangle. Copies of t made before the
// call are unaffected.
func (t *GlyphTable) Append(g GlyphInfo, r Rectangle) {
	t.glyphs = append(t.glyphs[:len(t.glyphs):len(t.glyphs)], g)
	t.recs = append(t.recs[:len(t.recs):len(t.recs)], r)
}

// Index returns the position of the glyph for codepoint r.
func (t GlyphTable) Index(r rune) (int, bool) {
	for i, g := range t.glyphs {
		if g.Value == r {
			return i, true
		}
	}
	return -1, false
}

// same reports whether t and u share their columns.
func (t GlyphTable) same(u GlyphTable) bool {
	return len(t.glyphs) == len(u.glyphs) && len(t.recs) == len(u.recs) &&
		unsafe.SliceData(t.glyphs) == unsafe.SliceData(u.glyphs) &&
		unsafe.SliceData(t.recs) == unsafe.SliceData(u.recs)
}

func (t GlyphTable) check() error {
	if len(t.glyphs) != len(t.recs) {
		return &GlyphCountError{Glyphs: len(t.glyphs), Recs: len(t.recs)}
	}
	return nil
}

// Font is a bitmap font: an atlas texture and the glyphs cut from it.
//
// Fonts returned by LoadFont and the other native loaders keep the struct
// raylib returned; pass them to UnloadFont. Fonts assembled in Go own only
// their texture.
//
// Copies of a native font share its native data. UnloadFont on one copy
// releases it for all of them: the others fall back to their Go glyph
// table, and their texture is gone.
type Font struct {
	BaseSize     int32
	GlyphPadding int32
	Texture      Texture2D
	Glyphs       GlyphTable

	native *NativeFont
	// loaded is the table built from native, used to detect replacement.
	loaded GlyphTable
}

// NewFont assembles a font from an atlas texture and its glyphs.
func NewFont(baseSize, glyphPadding int32, texture Texture2D, glyphs GlyphTable) Font {
	return Font{BaseSize: baseSize, GlyphPadding: glyphPadding, Texture: texture, Glyphs: glyphs}
}

// IsNative reports whether f was returned by a native loader.
func (f Font) IsNative() bool { return f.native != nil }

// nativeView returns the struct raylib returned for f, with the scalar
// fields taken from f. It is nil for Go-built fonts, for native fonts
// whose glyph table was replaced or appended to, and for unloaded ones.
func (f Font) nativeView() *NativeFont {
	if f.native == nil || released(f.native) {
		return nil
	}
	if !f.Glyphs.same(f.loaded) || f.Glyphs.Len() != int(f.native.GlyphCount) {
		return nil
	}
	nf := *f.native
	nf.BaseSize = f.BaseSize
	nf.GlyphPadding = f.GlyphPadding
	nf.Texture = f.Texture
	return &nf
}

// NativeFont is the C layout of a font: a shared count and two parallel
// arrays in native memory.
type NativeFont struct {
	BaseSize     int32
	GlyphCount   int32
	GlyphPadding int32
	Texture      Texture2D
	Recs         *Rectangle
	Glyphs       *GlyphInfo
}
