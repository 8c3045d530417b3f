package raylib

import (
	"fmt"
	"image"
	"math"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/gogpu/raylib/cmem"
)

// ImageFromGo copies img into a new R8G8B8A8 Image in native memory.
// Release it with UnloadImage.
func ImageFromGo(img image.Image) (Image, error) {
	b := img.Bounds()
	return imageFromGo(NativeAllocator{}, img, b.Dx(), b.Dy(), nil)
}

// ImageFromGoScaled is ImageFromGo resampled to width x height with s. A
// nil s uses bilinear filtering.
func ImageFromGoScaled(img image.Image, width, height int, s draw.Scaler) (Image, error) {
	if s == nil {
		s = draw.BiLinear
	}
	return imageFromGo(NativeAllocator{}, img, width, height, s)
}

func imageFromGo(a cmem.Allocator, src image.Image, w, h int, s draw.Scaler) (Image, error) {
	if w <= 0 || h <= 0 {
		return Image{}, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	if w > math.MaxInt32/4/h {
		return Image{}, fmt.Errorf("raylib: image %dx%d: %w", w, h, ErrOutOfMemory)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if s == nil {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	p, err := cmem.CopyToNative(a, dst.Pix)
	if err != nil {
		return Image{}, fmt.Errorf("raylib: image pixels: %w", err)
	}
	return Image{
		Data:    p,
		Width:   int32(w),
		Height:  int32(h),
		Mipmaps: 1,
		Format:  PixelFormatUncompressedR8G8B8A8,
	}, nil
}

// ToGo copies the first mipmap level of img into Go memory. Formats other
// than R8G8B8A8 are converted by LoadImageColors, so they need the
// library loaded. Compressed formats return ErrUnsupportedFormat.
func (img Image) ToGo() (*image.NRGBA, error) {
	if img.Data == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if img.Format < PixelFormatUncompressedGrayscale || img.Format >= PixelFormatCompressedDXT1RGB {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, img.Format)
	}

	out := image.NewNRGBA(image.Rect(0, 0, int(img.Width), int(img.Height)))
	if img.Format == PixelFormatUncompressedR8G8B8A8 {
		copy(out.Pix, unsafe.Slice((*byte)(img.Data), len(out.Pix)))
		return out, nil
	}

	colors := LoadImageColors(img)
	if len(colors)*4 != len(out.Pix) {
		return nil, fmt.Errorf("%w: %d colors for %dx%d", ErrUnsupportedFormat, len(colors), img.Width, img.Height)
	}
	for i, c := range colors {
		out.Pix[i*4+0] = c.R
		out.Pix[i*4+1] = c.G
		out.Pix[i*4+2] = c.B
		out.Pix[i*4+3] = c.A
	}
	return out, nil
}
