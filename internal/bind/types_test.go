package bind

import (
	"testing"
)

var (
	tVector2   = Struct(Float, Float)
	tVector3   = Struct(Float, Float, Float)
	tColor     = Struct(UChar, UChar, UChar, UChar)
	tRectangle = Struct(Float, Float, Float, Float)
	tTexture   = Struct(UInt, Int, Int, Int, Int)
	tImage     = Struct(Ptr, Int, Int, Int, Int)
	tGlyphInfo = Struct(Int, Int, Int, Int, tImage)
	tFont      = Struct(Int, Int, Int, tTexture, Ptr, Ptr)
	tRay       = Struct(tVector3, tVector3)
	tRayHit    = Struct(Bool, Float, tVector3, tVector3)
	tMatrix    = Struct(Array(Float, 16)...)
)

func TestStructLayout(t *testing.T) {
	tests := []struct {
		name      string
		t         *Type
		size      uintptr
		alignment uintptr
	}{
		{"Vector2", tVector2, 8, 4},
		{"Vector3", tVector3, 12, 4},
		{"Color", tColor, 4, 1},
		{"Rectangle", tRectangle, 16, 4},
		{"Texture", tTexture, 20, 4},
		{"Image", tImage, 24, 8},
		{"GlyphInfo", tGlyphInfo, 40, 8},
		{"Font", tFont, 48, 8},
		{"Ray", tRay, 24, 4},
		{"RayCollision", tRayHit, 32, 4},
		{"Matrix", tMatrix, 64, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.t.Size != tt.size {
				t.Errorf("Size = %d, want %d", tt.t.Size, tt.size)
			}
			if tt.t.Alignment != tt.alignment {
				t.Errorf("Alignment = %d, want %d", tt.t.Alignment, tt.alignment)
			}
		})
	}
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		name string
		t    *Type
		want []uintptr
	}{
		{"Font", tFont, []uintptr{0, 4, 8, 12, 32, 40}},
		{"GlyphInfo", tGlyphInfo, []uintptr{0, 4, 8, 12, 16}},
		{"RayCollision", tRayHit, []uintptr{0, 4, 8, 20}},
		{"padded", Struct(Char, Int64, Short), []uintptr{0, 8, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Offsets(tt.t)
			if len(got) != len(tt.want) {
				t.Fatalf("Offsets() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Offsets()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFields(t *testing.T) {
	got := Fields(Array(Int, 2), Array(Ptr, 3), []*Type{UInt})
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if got[0] != Int || got[2] != Ptr || got[5] != UInt {
		t.Errorf("Fields() order wrong: %v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		t    *Type
		want []argClass
	}{
		{"int", Int, []argClass{classInteger}},
		{"double", Double, []argClass{classSSE}},
		{"Vector2", tVector2, []argClass{classSSE}},
		{"Vector3", tVector3, []argClass{classSSE, classSSE}},
		{"Color", tColor, []argClass{classInteger}},
		{"Rectangle", tRectangle, []argClass{classSSE, classSSE}},
		{"float and int share an eightbyte", Struct(Float, Int), []argClass{classInteger}},
		{"int pair then float pair", Struct(Int, Int, Float, Float), []argClass{classInteger, classSSE}},
		{"Texture", tTexture, []argClass{classMemory}},
		{"Font", tFont, []argClass{classMemory}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.t)
			if len(got) != len(tt.want) {
				t.Fatalf("classify() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("classify()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
