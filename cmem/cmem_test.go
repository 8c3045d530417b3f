package cmem

import (
	"errors"
	"testing"
	"unsafe"
)

func TestTrackingAllocFree(t *testing.T) {
	var tr Tracking
	p, err := tr.Alloc(10)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if uintptr(p)%8 != 0 {
		t.Errorf("block %p not 8-byte aligned", p)
	}
	for i, b := range unsafe.Slice((*byte)(p), 10) {
		if b != Poison {
			t.Fatalf("byte %d = %#x, want poison", i, b)
		}
	}
	if tr.Live() != 1 || tr.LiveBytes() != 10 || !tr.Owns(p) {
		t.Errorf("Live=%d LiveBytes=%d Owns=%v", tr.Live(), tr.LiveBytes(), tr.Owns(p))
	}
	if err := tr.Free(p); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if tr.Live() != 0 || tr.Allocs() != 1 || tr.Frees() != 1 {
		t.Errorf("Live=%d Allocs=%d Frees=%d", tr.Live(), tr.Allocs(), tr.Frees())
	}
}

func TestTrackingErrors(t *testing.T) {
	var tr Tracking
	p, _ := tr.Alloc(4)
	if err := tr.Free(p); err != nil {
		t.Fatal(err)
	}
	if err := tr.Free(p); !errors.Is(err, ErrDoubleFree) {
		t.Errorf("second Free = %v, want ErrDoubleFree", err)
	}
	var x int
	if err := tr.Free(unsafe.Pointer(&x)); !errors.Is(err, ErrUnknownPointer) {
		t.Errorf("foreign Free = %v, want ErrUnknownPointer", err)
	}
	if err := tr.Free(nil); err != nil {
		t.Errorf("Free(nil) = %v", err)
	}
	if p, err := tr.Alloc(0); p != nil || err != nil {
		t.Errorf("Alloc(0) = %v, %v", p, err)
	}
}

func TestTrackingLimit(t *testing.T) {
	tr := Tracking{Limit: 16}
	if _, err := tr.Alloc(12); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Alloc(8); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Alloc past limit = %v, want ErrOutOfMemory", err)
	}
	if tr.Allocs() != 1 {
		t.Errorf("failed allocation counted")
	}
}

func TestCopyRoundTrip(t *testing.T) {
	type pair struct {
		A int32
		B float32
	}
	tests := []struct {
		name string
		src  []pair
	}{
		{"empty", nil},
		{"one", []pair{{1, 1.5}}},
		{"several", []pair{{1, 2}, {-3, 4.25}, {5, -6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracking
			p, err := CopyToNative(&tr, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if len(tt.src) == 0 {
				if p != nil || tr.Allocs() != 0 {
					t.Fatal("empty copy allocated")
				}
			}
			got := CopyFromNative[pair](p, len(tt.src))
			if len(got) != len(tt.src) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.src))
			}
			for i := range got {
				if got[i] != tt.src[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.src[i])
				}
			}
			if v := Slice[pair](p, len(tt.src)); len(v) != len(tt.src) {
				t.Errorf("Slice len = %d", len(v))
			}
			if err := tr.Free(p); err != nil {
				t.Fatal(err)
			}
			if tr.Live() != 0 {
				t.Errorf("Live = %d after free", tr.Live())
			}
		})
	}
}

type failingAllocator struct{}

func (failingAllocator) Alloc(uintptr) (unsafe.Pointer, error) { return nil, ErrOutOfMemory }
func (failingAllocator) Free(unsafe.Pointer) error { return nil }

func TestCopyToNativeFailure(t *testing.T) {
	if _, err := CopyToNative(failingAllocator{}, []int{1}); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("error = %v, want ErrOutOfMemory", err)
	}
}
