package raylib

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/gogpu/raylib/cmem"
)

func TestImageFromGoRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 13, 22))
	src.Set(10, 20, color.RGBA{255, 0, 0, 255})
	src.Set(12, 21, color.RGBA{128, 0, 0, 128})
	src.Set(11, 20, color.RGBA{0, 0, 255, 255})

	var tr cmem.Tracking
	img, err := imageFromGo(&tr, src, 3, 2, nil)
	if err != nil {
		t.Fatalf("imageFromGo: %v", err)
	}
	if img.Width != 3 || img.Height != 2 || img.Mipmaps != 1 || img.Format != PixelFormatUncompressedR8G8B8A8 {
		t.Errorf("image header = %+v", img)
	}
	if !tr.Owns(img.Data) || tr.LiveBytes() != 3*2*4 {
		t.Errorf("pixels not allocated by the allocator: live bytes %d", tr.LiveBytes())
	}

	out, err := img.ToGo()
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{255, 0, 0, 255}},
		{1, 0, color.NRGBA{0, 0, 255, 255}},
		{2, 1, color.NRGBA{255, 0, 0, 128}},
		{0, 1, color.NRGBA{}},
	}
	for _, tt := range tests {
		if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if err := tr.Free(img.Data); err != nil {
		t.Fatal(err)
	}
}

func TestImageFromGoScaled(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	src.SetNRGBA(1, 0, color.NRGBA{200, 100, 50, 255})

	var tr cmem.Tracking
	img, err := imageFromGo(&tr, src, 4, 2, draw.NearestNeighbor)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = tr.Free(img.Data) }()

	out, err := img.ToGo()
	if err != nil {
		t.Fatal(err)
	}
	for y := range 2 {
		for x := range 4 {
			want := src.NRGBAAt(x/2, 0)
			if got := out.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageConversionErrors(t *testing.T) {
	var tr cmem.Tracking
	if _, err := imageFromGo(&tr, image.NewNRGBA(image.Rect(0, 0, 0, 4)), 0, 4, nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty source: err = %v, want ErrEmptyImage", err)
	}

	small := cmem.Tracking{Limit: 8}
	if _, err := imageFromGo(&small, image.NewNRGBA(image.Rect(0, 0, 4, 4)), 4, 4, nil); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("over limit: err = %v, want ErrOutOfMemory", err)
	}

	if _, err := (Image{}).ToGo(); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("zero Image: err = %v, want ErrEmptyImage", err)
	}
	var px [16]byte
	compressed := Image{Data: unsafe.Pointer(&px[0]), Width: 4, Height: 4, Mipmaps: 1, Format: PixelFormatCompressedDXT1RGB}
	if _, err := compressed.ToGo(); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("compressed: err = %v, want ErrUnsupportedFormat", err)
	}
}
