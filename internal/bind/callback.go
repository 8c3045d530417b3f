package bind

import (
	"github.com/go-webgpu/goffi/ffi"
)

// NewCallback returns a C function pointer that calls fn. fn must be a
// func whose arguments are integers, pointers, float64 or bool, returning
// at most one such value. Callbacks are never released and the process
// has a fixed budget of them, so create them once and reuse.
func NewCallback(fn any) uintptr {
	return ffi.NewCallback(fn)
}
