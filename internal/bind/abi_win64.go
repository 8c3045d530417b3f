package bind

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/types"
)

// goffiPlan is a signature rewritten into one goffi can call directly.
type goffiPlan struct {
	orig  []*Type
	ret   *Type
	args  []*Type
	byRef []bool // argument i is passed as a pointer to a copy
	sret  bool   // result goes through a hidden first pointer argument
	size  uintptr
}

// planPassthrough hands the signature to goffi unchanged.
func planPassthrough(ret *Type, args []*Type) (*goffiPlan, error) {
	return &goffiPlan{orig: args, ret: ret, args: args, byRef: make([]bool, len(args)), size: ret.Size}, nil
}

// planWin64 lowers a signature to the Microsoft x64 convention. Aggregates
// of 1, 2, 4 or 8 bytes travel as integers of that size; all others are
// passed by reference to a caller-owned copy and returned through a hidden
// pointer.
func planWin64(ret *Type, args []*Type) (*goffiPlan, error) {
	p := &goffiPlan{
		orig:  args,
		ret:   ret,
		args:  make([]*Type, 0, len(args)+1),
		byRef: make([]bool, 0, len(args)+1),
		size:  ret.Size,
	}
	switch {
	case ret.Kind == types.FloatType || ret.Kind == types.DoubleType:
		return nil, fmt.Errorf("%w: floating point result", ErrABI)
	case ret.Kind == types.StructType:
		if t := win64Scalar(ret.Size); t != nil {
			p.ret = t
		} else {
			p.sret = true
			p.ret = Ptr
			p.args = append(p.args, Ptr)
			p.byRef = append(p.byRef, false)
		}
	}
	for _, a := range args {
		if a.Kind != types.StructType {
			p.args = append(p.args, a)
			p.byRef = append(p.byRef, false)
			continue
		}
		if t := win64Scalar(a.Size); t != nil {
			p.args = append(p.args, t)
			p.byRef = append(p.byRef, false)
			continue
		}
		p.args = append(p.args, Ptr)
		p.byRef = append(p.byRef, true)
	}
	return p, nil
}

func win64Scalar(size uintptr) *Type {
	switch size {
	case 1:
		return types.UInt8TypeDescriptor
	case 2:
		return types.UInt16TypeDescriptor
	case 4:
		return types.UInt32TypeDescriptor
	case 8:
		return types.UInt64TypeDescriptor
	}
	return nil
}

// values builds goffi's argument vector. keep receives the copies and
// pointer cells that must stay reachable until the call returns.
func (p *goffiPlan) values(ret unsafe.Pointer, args []unsafe.Pointer, keep *[]any) []unsafe.Pointer {
	out := make([]unsafe.Pointer, 0, len(p.args))
	if p.sret {
		cell := new(unsafe.Pointer)
		*cell = ret
		*keep = append(*keep, cell)
		out = append(out, unsafe.Pointer(cell))
	}
	for i, a := range args {
		j := i
		if p.sret {
			j++
		}
		if !p.byRef[j] {
			out = append(out, a)
			continue
		}
		// The callee may write to a by-reference aggregate.
		n := p.orig[i].Size
		buf := make([]byte, n)
		copy(buf, unsafe.Slice((*byte)(a), n))
		cell := new(unsafe.Pointer)
		*cell = unsafe.Pointer(&buf[0])
		*keep = append(*keep, buf, cell)
		out = append(out, unsafe.Pointer(cell))
	}
	return out
}
