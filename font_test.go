package raylib

import (
	"errors"
	"testing"
)

func sentinelGlyphs(n int) ([]GlyphInfo, []Rectangle) {
	glyphs := make([]GlyphInfo, n)
	recs := make([]Rectangle, n)
	for i := range n {
		k := int32(i + 1)
		glyphs[i] = GlyphInfo{
			Value:    rune(0x41 + i),
			OffsetX:  k * 10,
			OffsetY:  -k * 11,
			AdvanceX: k * 12,
			Image:    Image{Width: k * 13, Height: k * 14, Mipmaps: 1, Format: PixelFormatUncompressedGrayAlpha},
		}
		recs[i] = Rectangle{X: float32(k) * 1.5, Y: float32(k) * 2.25, Width: float32(k) * 3.125, Height: -float32(k)}
	}
	return glyphs, recs
}

func TestNewGlyphTable(t *testing.T) {
	glyphs, recs := sentinelGlyphs(3)
	tbl, err := NewGlyphTable(glyphs, recs)
	if err != nil {
		t.Fatalf("NewGlyphTable: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	glyphs[0].Value = 'z'
	if tbl.Glyph(0).Value != 'A' {
		t.Errorf("table aliases the input slice")
	}
	if i, ok := tbl.Index('C'); !ok || i != 2 {
		t.Errorf("Index('C') = %d, %v", i, ok)
	}
	if _, ok := tbl.Index('Q'); ok {
		t.Errorf("Index('Q') found a glyph")
	}

	_, err = NewGlyphTable(glyphs, recs[:2])
	var gce *GlyphCountError
	if !errors.As(err, &gce) {
		t.Fatalf("mismatched columns: err = %v, want *GlyphCountError", err)
	}
	if gce.Glyphs != 3 || gce.Recs != 2 {
		t.Errorf("GlyphCountError = %+v", gce)
	}
}

func TestGlyphTableAppend(t *testing.T) {
	var tbl GlyphTable
	if tbl.Len() != 0 {
		t.Fatalf("zero table Len() = %d", tbl.Len())
	}
	tbl.Append(GlyphInfo{Value: 'x'}, Rectangle{Width: 4})
	tbl.Append(GlyphInfo{Value: 'y'}, Rectangle{Width: 5})
	if tbl.Len() != 2 || tbl.Rec(1).Width != 5 || tbl.Glyph(1).Value != 'y' {
		t.Errorf("after Append: Len=%d Rec(1)=%v Glyph(1)=%v", tbl.Len(), tbl.Rec(1), tbl.Glyph(1))
	}
	recs := tbl.Recs()
	recs[0].Width = 99
	if tbl.Rec(0).Width != 4 {
		t.Errorf("Recs() aliases the table")
	}
	if err := tbl.check(); err != nil {
		t.Errorf("check() = %v", err)
	}

	var base GlyphTable
	for _, r := range "abc" {
		base.Append(GlyphInfo{Value: r}, Rectangle{X: float32(r)})
	}
	a, b := base, base
	a.Append(GlyphInfo{Value: 'X'}, Rectangle{X: 1})
	b.Append(GlyphInfo{Value: 'Y'}, Rectangle{X: 2})
	if a.Glyph(3).Value != 'X' || a.Rec(3).X != 1 {
		t.Errorf("a[3] = %q %v, want 'X' X=1", a.Glyph(3).Value, a.Rec(3))
	}
	if b.Glyph(3).Value != 'Y' || b.Rec(3).X != 2 {
		t.Errorf("b[3] = %q %v, want 'Y' X=2", b.Glyph(3).Value, b.Rec(3))
	}
	if base.Len() != 3 {
		t.Errorf("base Len() = %d after appending to copies", base.Len())
	}
}

func TestFontNativeView(t *testing.T) {
	glyphs, recs := sentinelGlyphs(2)
	tbl, _ := NewGlyphTable(glyphs, recs)

	built := NewFont(20, 4, Texture2D{ID: 7}, tbl)
	if built.IsNative() || built.nativeView() != nil {
		t.Fatalf("Go-built font reports a native view")
	}

	f := fontFromNative(NativeFont{
		BaseSize: 20, GlyphCount: 2, GlyphPadding: 4, Texture: Texture2D{ID: 7},
		Recs: &recs[0], Glyphs: &glyphs[0],
	})
	if f.Glyphs.Len() != 2 || f.Glyphs.Rec(1) != recs[1] {
		t.Fatalf("managed table = %d glyphs, Rec(1) = %v", f.Glyphs.Len(), f.Glyphs.Rec(1))
	}
	f.BaseSize = 32
	v := f.nativeView()
	if v == nil {
		t.Fatal("native font has no view")
	}
	if v == f.native {
		t.Errorf("view is the stored struct, want a copy")
	}
	if v.BaseSize != 32 || v.GlyphCount != 2 || f.native.BaseSize != 20 || v.Recs != &recs[0] {
		t.Errorf("view BaseSize=%d GlyphCount=%d Recs=%p, stored BaseSize=%d", v.BaseSize, v.GlyphCount, v.Recs, f.native.BaseSize)
	}

	tests := []struct {
		name  string
		edit  func(g *Font)
		fresh bool
	}{
		{"unchanged copy", func(*Font) {}, false},
		{"same length replacement", func(g *Font) {
			g.Glyphs, _ = NewGlyphTable(
				[]GlyphInfo{{Value: 'Z'}, {Value: 'Y'}},
				[]Rectangle{{X: 99}, {X: 98}},
			)
		}, true},
		{"append", func(g *Font) { g.Glyphs.Append(GlyphInfo{Value: '!'}, Rectangle{}) }, true},
		{"emptied", func(g *Font) { g.Glyphs = GlyphTable{} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := f
			tt.edit(&g)
			if got := g.nativeView() == nil; got != tt.fresh {
				t.Errorf("marshals the Go table = %v, want %v", got, tt.fresh)
			}
		})
	}
	if f.nativeView() == nil {
		t.Errorf("editing copies detached the original font")
	}
}

func TestUnloadFontSharedNative(t *testing.T) {
	glyphs, recs := sentinelGlyphs(3)
	a := fontFromNative(NativeFont{GlyphCount: 3, Recs: &recs[0], Glyphs: &glyphs[0], Texture: Texture2D{ID: 5}})
	b := a

	// State UnloadFont leaves behind after the native free.
	markReleased(a.native)

	if b.nativeView() != nil {
		t.Errorf("copy of an unloaded font still passes the freed native struct")
	}
	if b.Glyphs.Len() != 3 || b.Glyphs.Glyph(2) != glyphs[2] {
		t.Errorf("copy lost its Go glyph table")
	}
	UnloadFont(&b)
	if b.IsNative() || b.Glyphs.Len() != 0 || b.Texture.ID != 0 {
		t.Errorf("UnloadFont left %+v", b)
	}
}
