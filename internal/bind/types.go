package bind

import (
	"runtime"

	"github.com/go-webgpu/goffi/types"
)

// Type is a C type descriptor.
type Type = types.TypeDescriptor

// C scalar types.
var (
	Void   = types.VoidTypeDescriptor
	Bool   = types.UInt8TypeDescriptor // _Bool
	Char   = types.SInt8TypeDescriptor
	UChar  = types.UInt8TypeDescriptor
	Short  = types.SInt16TypeDescriptor
	UShort = types.UInt16TypeDescriptor
	Int    = types.SInt32TypeDescriptor
	UInt   = types.UInt32TypeDescriptor
	Int64  = types.SInt64TypeDescriptor
	UInt64 = types.UInt64TypeDescriptor
	Float  = types.FloatTypeDescriptor
	Double = types.DoubleTypeDescriptor
	Ptr    = types.PointerTypeDescriptor

	// Long is C long: 64-bit on LP64 systems, 32-bit on Windows.
	Long = longType()
)

func longType() *Type {
	if runtime.GOOS == "windows" {
		return types.SInt32TypeDescriptor
	}
	return types.SInt64TypeDescriptor
}

// Struct builds a struct descriptor laid out with C rules: each member at
// the next offset aligned to its own alignment, the whole rounded up to the
// largest member alignment.
func Struct(members ...*Type) *Type {
	t := &Type{Kind: types.StructType, Members: members, Alignment: 1}
	var off uintptr
	for _, m := range members {
		off = alignUp(off, m.Alignment)
		off += m.Size
		if m.Alignment > t.Alignment {
			t.Alignment = m.Alignment
		}
	}
	t.Size = alignUp(off, t.Alignment)
	return t
}

// Array returns n copies of elem, for spreading a fixed C array into a
// Struct member list.
func Array(elem *Type, n int) []*Type {
	out := make([]*Type, n)
	for i := range out {
		out[i] = elem
	}
	return out
}

// Fields concatenates member lists.
func Fields(groups ...[]*Type) []*Type {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]*Type, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Offsets returns the byte offset of every member of a struct descriptor.
func Offsets(t *Type) []uintptr {
	offs := make([]uintptr, len(t.Members))
	var off uintptr
	for i, m := range t.Members {
		off = alignUp(off, m.Alignment)
		offs[i] = off
		off += m.Size
	}
	return offs
}

func alignUp(v, a uintptr) uintptr {
	if a <= 1 {
		return v
	}
	return (v + a - 1) &^ (a - 1)
}

func isFloat(t *Type) bool {
	return t.Kind == types.FloatType || t.Kind == types.DoubleType
}

func isSigned(t *Type) bool {
	switch t.Kind {
	case types.SInt8Type, types.SInt16Type, types.SInt32Type, types.SInt64Type, types.IntType:
		return true
	}
	return false
}
