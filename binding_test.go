package raylib

import (
	"errors"
	"testing"
)

func TestCallBeforeLoad(t *testing.T) {
	if IsLoaded() {
		t.Skip("library loaded")
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered %v, want an error", r)
		}
		var ce *CallError
		if !errors.As(err, &ce) || ce.Proc != "GetScreenWidth" {
			t.Errorf("panic = %v, want *CallError for GetScreenWidth", err)
		}
		if !errors.Is(err, ErrNotLoaded) {
			t.Errorf("panic = %v, want ErrNotLoaded", err)
		}
	}()
	GetScreenWidth()
}

func TestUnloadWithoutLoad(t *testing.T) {
	if IsLoaded() {
		t.Skip("library loaded")
	}
	if err := Unload(); err != nil {
		t.Errorf("Unload() = %v", err)
	}
}

func TestShapesTextureDefaults(t *testing.T) {
	if IsLoaded() {
		t.Skip("library loaded")
	}
	if got := GetShapesTexture(); got != (Texture2D{}) {
		t.Errorf("GetShapesTexture() = %+v", got)
	}
	if got := GetShapesTextureRectangle(); got != (Rectangle{Width: 1, Height: 1}) {
		t.Errorf("GetShapesTextureRectangle() = %+v", got)
	}
}

func TestSliceData(t *testing.T) {
	if sliceData([]int32(nil)) != nil || sliceData([]int32{}) != nil {
		t.Error("empty slice has data")
	}
	s := []int32{7, 8}
	if p := sliceData(s); p == nil || *(*int32)(p) != 7 {
		t.Errorf("sliceData = %v", p)
	}
}

func TestFormatTraceWithoutLibc(t *testing.T) {
	if libc.vsnprintf.Available() {
		t.Skip("libc resolved")
	}
	b := []byte("loaded %d textures\x00")
	if got := formatTrace(&b[0], nil); got != "loaded %d textures" {
		t.Errorf("formatTrace = %q", got)
	}
	if got := formatTrace(nil, nil); got != "" {
		t.Errorf("formatTrace(nil) = %q", got)
	}
}

func TestLibcNames(t *testing.T) {
	tests := []struct {
		goos, symbol, first string
	}{
		{"linux", "vsnprintf", "libc.so.6"},
		{"darwin", "vsnprintf", "/usr/lib/libSystem.B.dylib"},
		{"freebsd", "vsnprintf", "libc.so.7"},
		{"windows", "_vsnprintf", "msvcrt.dll"},
	}
	for _, tt := range tests {
		if got := vsnprintfSymbol(tt.goos); got != tt.symbol {
			t.Errorf("vsnprintfSymbol(%q) = %q", tt.goos, got)
		}
		if got := libcNames(tt.goos); got[0] != tt.first {
			t.Errorf("libcNames(%q) = %q", tt.goos, got)
		}
	}
}
