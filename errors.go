package raylib

import (
	"errors"
	"fmt"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	// ErrNotLoaded is wrapped in the *CallError a binding panics with when
	// it is called before Load.
	ErrNotLoaded = bind.ErrNotLoaded

	// ErrLibraryNotFound is returned by Load when no candidate library opens.
	ErrLibraryNotFound = bind.ErrLibraryNotFound

	// ErrABI is wrapped in the *CallError raised by bindings whose C
	// signature cannot be called on the running platform.
	ErrABI = bind.ErrABI

	// ErrAlreadyLoaded is returned by Load when the library is loaded.
	ErrAlreadyLoaded = errors.New("raylib: library already loaded")

	// ErrOutOfMemory is returned when a native allocation fails.
	ErrOutOfMemory = cmem.ErrOutOfMemory

	// ErrInvalidNativeFont is returned for a native font whose count and
	// pointers disagree.
	ErrInvalidNativeFont = errors.New("raylib: invalid native font")

	// ErrFontReleased is returned when a marshalled font is released twice.
	ErrFontReleased = errors.New("raylib: native font already released")

	// ErrNativeOwned is returned when releasing a font the native library
	// allocated. Those are freed with UnloadFont.
	ErrNativeOwned = errors.New("raylib: native font owned by the library")

	// ErrCallbackPoolExhausted is returned when every audio processor slot
	// is in use.
	ErrCallbackPoolExhausted = errors.New("raylib: audio callback pool exhausted")

	// ErrUnsupportedFormat is returned when converting a compressed image.
	ErrUnsupportedFormat = errors.New("raylib: unsupported pixel format")

	// ErrEmptyImage is returned when converting an image without pixels.
	ErrEmptyImage = errors.New("raylib: empty image")
)

// CallError is the panic value of a binding that cannot be called.
type CallError = bind.CallError

// SymbolError lists required functions the library does not export.
type SymbolError = bind.SymbolError

// GlyphCountError reports glyph and rectangle columns of different
// lengths.
type GlyphCountError struct {
	Glyphs int
	Recs   int
}

func (e *GlyphCountError) Error() string {
	return fmt.Sprintf("raylib: %d glyphs but %d atlas rectangles", e.Glyphs, e.Recs)
}

// TraceLogLevelError reports an unknown trace level name.
type TraceLogLevelError struct {
	Value string
}

func (e *TraceLogLevelError) Error() string {
	return fmt.Sprintf("raylib: unknown trace log level %q", e.Value)
}
