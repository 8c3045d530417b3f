package bind

import (
	"unsafe"

	"github.com/go-webgpu/goffi/types"
)

// invoker performs a call for one lowered signature. ret points at storage
// for the C result (nil to discard it) and args at the argument values, one
// pointer per C argument.
type invoker interface {
	invoke(fn, ret unsafe.Pointer, args []unsafe.Pointer) error
}

// argClass is the System V classification of one eightbyte.
type argClass uint8

const (
	classNone argClass = iota
	classInteger
	classSSE
	classMemory
)

func (c argClass) String() string {
	switch c {
	case classInteger:
		return "INTEGER"
	case classSSE:
		return "SSE"
	case classMemory:
		return "MEMORY"
	}
	return "NONE"
}

// leaf is a scalar at a byte offset inside an aggregate.
type leaf struct {
	off uintptr
	t   *Type
}

func flatten(t *Type, base uintptr, out []leaf) []leaf {
	if t.Kind != types.StructType {
		return append(out, leaf{off: base, t: t})
	}
	offs := Offsets(t)
	for i, m := range t.Members {
		out = flatten(m, base+offs[i], out)
	}
	return out
}

// classify returns the eightbyte classes of t. Aggregates larger than 16
// bytes are a single MEMORY class. An eightbyte holding any non-floating
// scalar is INTEGER; one holding only float or double is SSE.
func classify(t *Type) []argClass {
	if t.Kind == types.VoidType {
		return nil
	}
	if t.Kind != types.StructType {
		if isFloat(t) {
			return []argClass{classSSE}
		}
		return []argClass{classInteger}
	}
	if t.Size > 16 {
		return []argClass{classMemory}
	}
	cls := make([]argClass, (t.Size+7)/8)
	for _, l := range flatten(t, 0, nil) {
		i := l.off / 8
		if isFloat(l.t) {
			if cls[i] == classNone {
				cls[i] = classSSE
			}
			continue
		}
		cls[i] = classInteger
	}
	for i, c := range cls {
		if c == classNone {
			cls[i] = classSSE
		}
	}
	return cls
}

// loadWord reads size bytes at base+off into the low bytes of a machine
// word, sign-extending signed scalars.
func loadWord(base unsafe.Pointer, off, size uintptr, signed bool) uint64 {
	var w uint64
	src := unsafe.Slice((*byte)(unsafe.Add(base, off)), size)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&w)), 8), src)
	if signed && size < 8 {
		shift := 64 - 8*size
		w = uint64(int64(w<<shift) >> shift)
	}
	return w
}

// storeWords copies the first size bytes of words into dst.
func storeWords(dst unsafe.Pointer, words []uint64, size uintptr) {
	src := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), uintptr(len(words))*8)
	copy(unsafe.Slice((*byte)(dst), size), src)
}
