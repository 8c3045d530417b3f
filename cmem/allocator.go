package cmem

import (
	"errors"
	"unsafe"
)

// Errors returned by allocators.
var (
	// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("cmem: out of memory")

	// ErrDoubleFree is returned when a block is freed a second time.
	ErrDoubleFree = errors.New("cmem: double free")

	// ErrUnknownPointer is returned when freeing a pointer the allocator
	// never handed out.
	ErrUnknownPointer = errors.New("cmem: pointer not owned by allocator")
)

// Allocator hands out blocks of memory for native code.
type Allocator interface {
	// Alloc returns a block of at least size bytes. A zero size may return
	// nil without error.
	Alloc(size uintptr) (unsafe.Pointer, error)

	// Free releases a block returned by Alloc. Freeing nil is a no-op.
	Free(p unsafe.Pointer) error
}
