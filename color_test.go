package raylib

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"blank", Blank, 0, 0, 0, 0},
		{"half alpha red", Color{255, 0, 0, 128}, 32896, 0, 0, 32896},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestColorFromGo(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"raylib color", Color{1, 2, 3, 4}, Color{1, 2, 3, 4}},
		{"nrgba", color.NRGBA{10, 20, 30, 40}, Color{10, 20, 30, 40}},
		{"premultiplied", color.RGBA{128, 0, 0, 128}, Color{255, 0, 0, 128}},
		{"gray", color.Gray{Y: 200}, Color{200, 200, 200, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromGo(tt.in); got != tt.want {
				t.Errorf("ColorFromGo(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#3498db", Color{52, 152, 219, 255}},
		{"f00", Color{255, 0, 0, 255}},
		{"f008", Color{255, 0, 0, 136}},
		{"11223344", Color{17, 34, 51, 68}},
		{"", Black},
		{"12345", Black},
		{"gg0000", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorUint32(t *testing.T) {
	if got := (Color{0x12, 0x34, 0x56, 0x78}).Uint32(); got != 0x12345678 {
		t.Errorf("Uint32() = %#x", got)
	}
	if got := NewColor(1, 2, 3, 4); got != (Color{1, 2, 3, 4}) {
		t.Errorf("NewColor = %v", got)
	}
}

func TestColorLerp(t *testing.T) {
	tests := []struct {
		t    float32
		want Color
	}{
		{0, Black},
		{0.5, Color{128, 128, 128, 255}},
		{1, White},
		{2, White},
		{-1, Black},
	}
	for _, tt := range tests {
		if got := Black.Lerp(White, tt.t); got != tt.want {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    Color
	}{
		{0, 1, 0.5, Color{255, 0, 0, 255}},
		{240, 1, 0.5, Color{0, 0, 255, 255}},
		{-120, 1, 0.5, Color{0, 0, 255, 255}},
		{0, 0, 1, White},
		{0, 0, 0, Black},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}
