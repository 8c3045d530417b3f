package raylib

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/raylib/cmem"
)

func TestFontRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 4, 95} {
		glyphs, recs := sentinelGlyphs(n)
		tbl, err := NewGlyphTable(glyphs, recs)
		if err != nil {
			t.Fatal(err)
		}
		f := NewFont(18, 2, Texture2D{ID: 3, Width: 512, Height: 256, Mipmaps: 1}, tbl)

		var tr cmem.Tracking
		m := FontMarshaller{Alloc: &tr}
		nf, err := m.ToNative(f)
		if err != nil {
			t.Fatalf("n=%d: ToNative: %v", n, err)
		}
		if int(nf.GlyphCount) != n || nf.BaseSize != 18 || nf.GlyphPadding != 2 || nf.Texture.ID != 3 {
			t.Errorf("n=%d: native header = %+v", n, *nf)
		}
		if n == 0 {
			if nf.Recs != nil || nf.Glyphs != nil || tr.Allocs() != 0 {
				t.Errorf("empty font allocated columns")
			}
		} else {
			if !tr.Owns(unsafe.Pointer(nf.Recs)) || !tr.Owns(unsafe.Pointer(nf.Glyphs)) {
				t.Errorf("n=%d: columns not allocated by the marshaller's allocator", n)
			}
			nativeRecs := cmem.Slice[Rectangle](unsafe.Pointer(nf.Recs), n)
			for i := range nativeRecs {
				if nativeRecs[i] != recs[i] {
					t.Errorf("n=%d: native rec %d = %v, want %v", n, i, nativeRecs[i], recs[i])
				}
			}
		}

		back, err := m.ToManaged(nf)
		if err != nil {
			t.Fatalf("n=%d: ToManaged: %v", n, err)
		}
		if back.BaseSize != f.BaseSize || back.GlyphPadding != f.GlyphPadding || back.Texture != f.Texture {
			t.Errorf("n=%d: header = %d/%d/%v", n, back.BaseSize, back.GlyphPadding, back.Texture)
		}
		if back.Glyphs.Len() != n {
			t.Fatalf("n=%d: Len() = %d", n, back.Glyphs.Len())
		}
		for i := range n {
			if back.Glyphs.Glyph(i) != glyphs[i] {
				t.Errorf("n=%d: glyph %d = %+v, want %+v", n, i, back.Glyphs.Glyph(i), glyphs[i])
			}
			if back.Glyphs.Rec(i) != recs[i] {
				t.Errorf("n=%d: rec %d = %+v, want %+v", n, i, back.Glyphs.Rec(i), recs[i])
			}
		}

		if err := m.Release(nf); err != nil {
			t.Fatalf("n=%d: Release: %v", n, err)
		}
		if tr.Live() != 0 {
			t.Errorf("n=%d: %d blocks leaked", n, tr.Live())
		}
		if back.Glyphs.Len() != n {
			t.Errorf("n=%d: managed copy changed after release", n)
		}
	}
}

func TestFontToNativeMismatch(t *testing.T) {
	glyphs, recs := sentinelGlyphs(4)
	f := Font{BaseSize: 10, Glyphs: GlyphTable{glyphs: glyphs, recs: recs[:3]}}

	var tr cmem.Tracking
	_, err := FontMarshaller{Alloc: &tr}.ToNative(f)
	var gce *GlyphCountError
	if !errors.As(err, &gce) {
		t.Fatalf("err = %v, want *GlyphCountError", err)
	}
	if gce.Glyphs != 4 || gce.Recs != 3 {
		t.Errorf("GlyphCountError = %+v", gce)
	}
	if tr.Allocs() != 0 {
		t.Errorf("mismatched font allocated %d blocks", tr.Allocs())
	}
}

func TestFontToNativeOutOfMemory(t *testing.T) {
	glyphs, recs := sentinelGlyphs(4)
	tbl, _ := NewGlyphTable(glyphs, recs)
	recBytes := uintptr(len(recs)) * unsafe.Sizeof(Rectangle{})

	tr := cmem.Tracking{Limit: recBytes + 1}
	_, err := FontMarshaller{Alloc: &tr}.ToNative(NewFont(10, 0, Texture2D{}, tbl))
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("err = %v, want ErrOutOfMemory", err)
	}
	if tr.Allocs() != 1 || tr.Frees() != 1 || tr.Live() != 0 {
		t.Errorf("partial allocation not released: allocs=%d frees=%d live=%d", tr.Allocs(), tr.Frees(), tr.Live())
	}
}

func TestFontReleaseErrors(t *testing.T) {
	glyphs, recs := sentinelGlyphs(2)
	tbl, _ := NewGlyphTable(glyphs, recs)

	var tr cmem.Tracking
	m := FontMarshaller{Alloc: &tr}
	nf, err := m.ToNative(NewFont(10, 0, Texture2D{}, tbl))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Release(nf); err != nil {
		t.Fatal(err)
	}
	if nf.GlyphCount != -1 || nf.Recs != nil || nf.Glyphs != nil {
		t.Errorf("released font = %+v", *nf)
	}
	if err := m.Release(nf); !errors.Is(err, ErrFontReleased) {
		t.Errorf("second Release = %v, want ErrFontReleased", err)
	}
	if tr.Live() != 0 || tr.Frees() != 2 {
		t.Errorf("live=%d frees=%d", tr.Live(), tr.Frees())
	}

	foreign := &NativeFont{BaseSize: 10}
	if err := m.Release(foreign); !errors.Is(err, ErrNativeOwned) {
		t.Errorf("Release of a foreign font = %v, want ErrNativeOwned", err)
	}
	if err := m.Release(nil); !errors.Is(err, ErrInvalidNativeFont) {
		t.Errorf("Release(nil) = %v, want ErrInvalidNativeFont", err)
	}
}

func TestFontToManagedInvalid(t *testing.T) {
	var r Rectangle
	tests := []struct {
		name string
		nf   *NativeFont
	}{
		{"nil", nil},
		{"negative count", &NativeFont{GlyphCount: -2}},
		{"missing recs", &NativeFont{GlyphCount: 1, Glyphs: &GlyphInfo{}}},
		{"missing glyphs", &NativeFont{GlyphCount: 1, Recs: &r}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (FontMarshaller{}).ToManaged(tt.nf); !errors.Is(err, ErrInvalidNativeFont) {
				t.Errorf("err = %v, want ErrInvalidNativeFont", err)
			}
		})
	}
}

func TestWithNativeFont(t *testing.T) {
	glyphs, recs := sentinelGlyphs(3)
	tbl, _ := NewGlyphTable(glyphs, recs)
	f := NewFont(16, 1, Texture2D{}, tbl)

	var tr cmem.Tracking
	m := FontMarshaller{Alloc: &tr}
	var seen int32
	if err := m.WithNativeFont(f, func(nf *NativeFont) {
		seen = nf.GlyphCount
		if tr.Live() != 2 {
			t.Errorf("live blocks inside fn = %d, want 2", tr.Live())
		}
	}); err != nil {
		t.Fatal(err)
	}
	if seen != 3 || tr.Live() != 0 {
		t.Errorf("seen=%d live=%d", seen, tr.Live())
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("panic did not propagate")
			}
		}()
		_ = m.WithNativeFont(f, func(*NativeFont) { panic("boom") })
	}()
	if tr.Live() != 0 {
		t.Errorf("panicking fn leaked %d blocks", tr.Live())
	}

	bad := Font{Glyphs: GlyphTable{glyphs: glyphs}}
	called := false
	err := m.WithNativeFont(bad, func(*NativeFont) { called = true })
	var gce *GlyphCountError
	if !errors.As(err, &gce) || called {
		t.Errorf("mismatched font: err=%v called=%v", err, called)
	}
}
