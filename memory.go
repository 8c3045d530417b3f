package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procMemAlloc   = bind.New("MemAlloc", bind.Ptr, bind.UInt)
	procMemRealloc = bind.New("MemRealloc", bind.Ptr, bind.Ptr, bind.UInt)
	procMemFree    = bind.New("MemFree", bind.Void, bind.Ptr)
)

// MemAlloc allocates zeroed memory with the raylib allocator.
func MemAlloc(size uint32) unsafe.Pointer {
	var r unsafe.Pointer
	procMemAlloc.Call(unsafe.Pointer(&r), unsafe.Pointer(&size))
	return r
}

// MemRealloc resizes a block returned by MemAlloc.
func MemRealloc(ptr unsafe.Pointer, size uint32) unsafe.Pointer {
	var r unsafe.Pointer
	procMemRealloc.Call(unsafe.Pointer(&r), unsafe.Pointer(&ptr), unsafe.Pointer(&size))
	return r
}

// MemFree releases a block returned by MemAlloc or handed out by raylib.
func MemFree(ptr unsafe.Pointer) {
	procMemFree.Call(nil, unsafe.Pointer(&ptr))
}

// NativeAllocator is the cmem.Allocator backed by MemAlloc and MemFree.
// Memory handed to raylib functions that later free it must come from
// here.
type NativeAllocator struct{}

var _ cmem.Allocator = NativeAllocator{}

// Alloc implements cmem.Allocator.
func (NativeAllocator) Alloc(size uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	if uint64(size) > uint64(^uint32(0)) {
		return nil, ErrOutOfMemory
	}
	p := MemAlloc(uint32(size))
	if p == nil {
		return nil, ErrOutOfMemory
	}
	return p, nil
}

// Free implements cmem.Allocator.
func (NativeAllocator) Free(p unsafe.Pointer) error {
	if p != nil {
		MemFree(p)
	}
	return nil
}
