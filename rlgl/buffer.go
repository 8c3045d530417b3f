package rlgl

import (
	"unsafe"
)

// data returns the address and byte size of s. T must not contain Go
// pointers.
func data[T any](s []T) (unsafe.Pointer, int32) {
	if len(s) == 0 {
		return nil, 0
	}
	var zero T
	return unsafe.Pointer(unsafe.SliceData(s)), int32(uintptr(len(s)) * unsafe.Sizeof(zero))
}
