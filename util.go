package raylib

import (
	"unsafe"
)

// sliceData returns the address of the first element of s, or nil when s
// is empty.
func sliceData[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}
