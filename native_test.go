package raylib

import (
	"slices"
	"testing"
)

// requireRaylib loads the native library for the duration of the test and
// skips when it is not installed.
func requireRaylib(t *testing.T) {
	t.Helper()
	if IsLoaded() {
		return
	}
	if err := Load(); err != nil {
		t.Skipf("raylib not available: %v", err)
	}
	t.Cleanup(func() {
		if err := Unload(); err != nil {
			t.Errorf("Unload() = %v", err)
		}
	})
}

func TestNativeStructReturns(t *testing.T) {
	requireRaylib(t)

	if got := GetColor(0xFF8000FF); got != (Color{255, 128, 0, 255}) {
		t.Errorf("GetColor = %v", got)
	}
	if got := ColorNormalize(Color{255, 0, 255, 0}); got != (Vector4{1, 0, 1, 0}) {
		t.Errorf("ColorNormalize = %v", got)
	}
	got := GetCollisionRec(Rectangle{0, 0, 10, 10}, Rectangle{5, 5, 10, 10})
	if got != (Rectangle{5, 5, 5, 5}) {
		t.Errorf("GetCollisionRec = %v", got)
	}
}

func TestNativeText(t *testing.T) {
	requireRaylib(t)

	if got := TextToUpper("raylib"); got != "RAYLIB" {
		t.Errorf("TextToUpper = %q", got)
	}
	if got := TextLength("héllo"); got != 6 {
		t.Errorf("TextLength = %d, want 6 bytes", got)
	}
	if got := GetCodepointCount("héllo"); got != 5 {
		t.Errorf("GetCodepointCount = %d", got)
	}
	if got := LoadCodepoints("aé€"); !slices.Equal(got, []rune{'a', 'é', '€'}) {
		t.Errorf("LoadCodepoints = %q", got)
	}
}

func TestNativeImage(t *testing.T) {
	requireRaylib(t)

	img := GenImageColor(4, 2, Red)
	defer UnloadImage(img)
	if !IsImageReady(img) {
		t.Fatal("generated image not ready")
	}
	if n := GetPixelDataSize(img.Width, img.Height, img.Format); n != 32 {
		t.Errorf("GetPixelDataSize = %d, want 32", n)
	}
	out, err := img.ToGo()
	if err != nil {
		t.Fatal(err)
	}
	if c := out.NRGBAAt(3, 1); c.R != Red.R || c.G != Red.G || c.B != Red.B || c.A != Red.A {
		t.Errorf("pixel (3,1) = %v, want %v", c, Red)
	}
}

func TestNativeFontMarshaller(t *testing.T) {
	requireRaylib(t)

	glyphs, recs := sentinelGlyphs(4)
	tbl, err := NewGlyphTable(glyphs, recs)
	if err != nil {
		t.Fatal(err)
	}
	var m FontMarshaller
	nf, err := m.ToNative(NewFont(12, 1, Texture2D{}, tbl))
	if err != nil {
		t.Fatal(err)
	}
	back, err := m.ToManaged(nf)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Release(nf); err != nil {
		t.Fatal(err)
	}
	for i := range 4 {
		if back.Glyphs.Glyph(i) != glyphs[i] || back.Glyphs.Rec(i) != recs[i] {
			t.Errorf("glyph %d did not survive native memory", i)
		}
	}
}
