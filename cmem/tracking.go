package cmem

import (
	"sync"
	"unsafe"
)

// Poison fills every block Tracking hands out.
const Poison = 0xA5

// Tracking is an Allocator backed by Go memory that records every live
// block. The zero value is ready to use.
type Tracking struct {
	// Limit caps the total live bytes; zero means unlimited. Requests past
	// the limit fail with ErrOutOfMemory.
	Limit uintptr

	mu     sync.Mutex
	live   map[unsafe.Pointer][]byte
	freed  map[unsafe.Pointer]bool
	bytes  uintptr
	allocs int
	frees  int
}

// Alloc implements Allocator.
func (t *Tracking) Alloc(size uintptr) (unsafe.Pointer, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if size == 0 {
		return nil, nil
	}
	if t.Limit > 0 && t.bytes+size > t.Limit {
		return nil, ErrOutOfMemory
	}
	// Words keep the block 8-byte aligned like malloc.
	words := make([]uint64, (size+7)/8)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	for i := range b {
		b[i] = Poison
	}
	p := unsafe.Pointer(&b[0])
	if t.live == nil {
		t.live = make(map[unsafe.Pointer][]byte)
	}
	t.live[p] = b
	delete(t.freed, p)
	t.bytes += size
	t.allocs++
	return p, nil
}

// Free implements Allocator.
func (t *Tracking) Free(p unsafe.Pointer) error {
	if p == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	b, ok := t.live[p]
	if !ok {
		if t.freed[p] {
			return ErrDoubleFree
		}
		return ErrUnknownPointer
	}
	delete(t.live, p)
	if t.freed == nil {
		t.freed = make(map[unsafe.Pointer]bool)
	}
	t.freed[p] = true
	t.bytes -= uintptr(len(b))
	t.frees++
	return nil
}

// Live returns the number of blocks allocated and not yet freed.
func (t *Tracking) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// LiveBytes returns the size of all live blocks.
func (t *Tracking) LiveBytes() uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bytes
}

// Allocs returns the number of successful allocations.
func (t *Tracking) Allocs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Frees returns the number of successful frees.
func (t *Tracking) Frees() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frees
}

// Owns reports whether p is a live block of t.
func (t *Tracking) Owns(p unsafe.Pointer) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.live[p]
	return ok
}
