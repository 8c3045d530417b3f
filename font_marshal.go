package raylib

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/gogpu/raylib/cmem"
)

// FontMarshaller converts fonts between their Go and native forms.
//
// The zero value allocates with the raylib allocator.
type FontMarshaller struct {
	Alloc cmem.Allocator
}

// marshalled records the allocator of every NativeFont produced by
// ToNative and not yet released.
var marshalled = struct {
	mu sync.Mutex
	m  map[*NativeFont]cmem.Allocator
}{m: make(map[*NativeFont]cmem.Allocator)}

func (m FontMarshaller) allocator() cmem.Allocator {
	if m.Alloc == nil {
		return NativeAllocator{}
	}
	return m.Alloc
}

// ToNative copies f into native memory. Both columns are allocated with
// the marshaller's allocator and must be freed with Release. An empty
// glyph table gives nil pointers and a zero count.
func (m FontMarshaller) ToNative(f Font) (*NativeFont, error) {
	if err := f.Glyphs.check(); err != nil {
		return nil, err
	}
	n := f.Glyphs.Len()
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("raylib: %d glyphs: %w", n, ErrOutOfMemory)
	}
	nf := &NativeFont{
		BaseSize:     f.BaseSize,
		GlyphCount:   int32(n),
		GlyphPadding: f.GlyphPadding,
		Texture:      f.Texture,
	}
	a := m.allocator()
	if n > 0 {
		recs, err := cmem.CopyToNative(a, f.Glyphs.recs)
		if err != nil {
			return nil, fmt.Errorf("raylib: font rectangles: %w", err)
		}
		glyphs, err := cmem.CopyToNative(a, f.Glyphs.glyphs)
		if err != nil {
			a.Free(recs)
			return nil, fmt.Errorf("raylib: font glyphs: %w", err)
		}
		nf.Recs = (*Rectangle)(recs)
		nf.Glyphs = (*GlyphInfo)(glyphs)
	}

	marshalled.mu.Lock()
	marshalled.m[nf] = a
	marshalled.mu.Unlock()
	return nf, nil
}

// ToManaged copies a native font into Go memory. The result does not
// reference nf.
func (m FontMarshaller) ToManaged(nf *NativeFont) (Font, error) {
	switch {
	case nf == nil:
		return Font{}, fmt.Errorf("%w: nil", ErrInvalidNativeFont)
	case nf.GlyphCount < 0:
		return Font{}, fmt.Errorf("%w: glyph count %d", ErrInvalidNativeFont, nf.GlyphCount)
	case nf.GlyphCount > 0 && (nf.Recs == nil || nf.Glyphs == nil):
		return Font{}, fmt.Errorf("%w: %d glyphs without data", ErrInvalidNativeFont, nf.GlyphCount)
	}
	n := int(nf.GlyphCount)
	return Font{
		BaseSize:     nf.BaseSize,
		GlyphPadding: nf.GlyphPadding,
		Texture:      nf.Texture,
		Glyphs: GlyphTable{
			glyphs: cmem.CopyFromNative[GlyphInfo](unsafe.Pointer(nf.Glyphs), n),
			recs:   cmem.CopyFromNative[Rectangle](unsafe.Pointer(nf.Recs), n),
		},
	}, nil
}

// Release frees the columns of a font produced by ToNative and leaves nf
// empty with a negative count. Releasing it again returns ErrFontReleased;
// a font raylib allocated returns ErrNativeOwned and is left untouched.
func (m FontMarshaller) Release(nf *NativeFont) error {
	if nf == nil {
		return fmt.Errorf("%w: nil", ErrInvalidNativeFont)
	}
	marshalled.mu.Lock()
	a, ok := marshalled.m[nf]
	delete(marshalled.m, nf)
	marshalled.mu.Unlock()
	if !ok {
		if released(nf) {
			return ErrFontReleased
		}
		return ErrNativeOwned
	}

	err := errors.Join(
		a.Free(unsafe.Pointer(nf.Recs)),
		a.Free(unsafe.Pointer(nf.Glyphs)),
	)
	markReleased(nf)
	return err
}

func released(nf *NativeFont) bool {
	return nf.GlyphCount == -1 && nf.Recs == nil && nf.Glyphs == nil
}

func markReleased(nf *NativeFont) {
	nf.GlyphCount = -1
	nf.Recs = nil
	nf.Glyphs = nil
}

// WithNativeFont marshals f, calls fn and releases the native copy,
// including when fn panics. fn must not keep nf.
func (m FontMarshaller) WithNativeFont(f Font, fn func(nf *NativeFont)) (err error) {
	nf, err := m.ToNative(f)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := m.Release(nf); err == nil {
			err = rerr
		}
	}()
	fn(nf)
	return nil
}

// withFont passes f to fn in native form. Native fonts pass the struct
// raylib returned; Go-built fonts are marshalled for the duration of fn.
// Marshalling failures are logged and fn is skipped.
func withFont(f Font, fn func(nf *NativeFont)) {
	if nf := f.nativeView(); nf != nil {
		fn(nf)
		return
	}
	if err := (FontMarshaller{}).WithNativeFont(f, fn); err != nil {
		Logger().Warn("raylib: font not passed to native call", "err", err)
	}
}

// fontFromNative wraps a font returned by a native loader.
func fontFromNative(nf NativeFont) Font {
	f, err := FontMarshaller{}.ToManaged(&nf)
	if err != nil {
		Logger().Warn("raylib: native font rejected", "err", err)
		f = Font{BaseSize: nf.BaseSize, GlyphPadding: nf.GlyphPadding, Texture: nf.Texture}
	}
	f.native = &nf
	f.loaded = f.Glyphs
	return f
}
