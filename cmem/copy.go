package cmem

import (
	"unsafe"
)

// CopyToNative allocates room for src with a and copies it there. An empty
// src returns nil without allocating.
func CopyToNative[T any](a Allocator, src []T) (unsafe.Pointer, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var zero T
	size := uintptr(len(src)) * unsafe.Sizeof(zero)
	p, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrOutOfMemory
	}
	copy(unsafe.Slice((*T)(p), len(src)), src)
	return p, nil
}

// CopyFromNative copies n elements at p into a new Go slice. It returns an
// empty, non-nil slice when n is zero.
func CopyFromNative[T any](p unsafe.Pointer, n int) []T {
	out := make([]T, n)
	if n > 0 && p != nil {
		copy(out, unsafe.Slice((*T)(p), n))
	}
	return out
}

// Slice views n elements at p without copying. The result aliases native
// memory and must not be used after that memory is released.
func Slice[T any](p unsafe.Pointer, n int) []T {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}
