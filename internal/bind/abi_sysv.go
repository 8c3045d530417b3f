package bind

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/types"
)

// System V amd64 register file and the trampoline's stack area.
const (
	sysvGPRs     = 6
	sysvSSEs     = 8
	sysvMaxStack = 64
)

type slotKind uint8

const (
	slotGPR slotKind = iota
	slotSSE
	slotStack
)

// piece moves one eightbyte (or less) of an argument into a slot.
type piece struct {
	arg    int
	off    uintptr
	size   uintptr
	signed bool
	kind   slotKind
	index  int
}

// retSource names the register an eightbyte of the result comes back in.
type retSource uint8

const (
	srcRAX retSource = iota
	srcRDX
	srcXMM0
	srcXMM1
)

// sysvFrame is shared with the trampoline; field offsets are fixed in
// call_sysv_amd64.s.
type sysvFrame struct {
	fn     uintptr
	gpr    [sysvGPRs]uint64
	sse    [sysvSSEs]uint64
	nstack uint64
	stack  [sysvMaxStack]uint64
	rax    uint64
	rdx    uint64
	xmm0   uint64
	xmm1   uint64
}

func (f *sysvFrame) reg(s retSource) uint64 {
	switch s {
	case srcRDX:
		return f.rdx
	case srcXMM0:
		return f.xmm0
	case srcXMM1:
		return f.xmm1
	}
	return f.rax
}

// sysvPlan is the register and stack assignment of one signature.
type sysvPlan struct {
	ret    *Type
	sret   bool
	retSrc []retSource
	pieces []piece
	gprs   int
	sses   int
	stack  int
}

// planSysV lowers a C signature to System V amd64 slots.
func planSysV(ret *Type, args []*Type) (*sysvPlan, error) {
	p := &sysvPlan{ret: ret}

	if ret.Kind != types.VoidType {
		cls := classify(ret)
		if cls[0] == classMemory {
			p.sret = true
			p.gprs = 1
		} else {
			var ints, sses int
			for _, c := range cls {
				if c == classInteger {
					p.retSrc = append(p.retSrc, []retSource{srcRAX, srcRDX}[ints])
					ints++
				} else {
					p.retSrc = append(p.retSrc, []retSource{srcXMM0, srcXMM1}[sses])
					sses++
				}
			}
		}
	}

	for i, a := range args {
		if a.Kind == types.VoidType || a.Size == 0 {
			return nil, fmt.Errorf("%w: argument %d has no size", ErrABI, i)
		}
		cls := classify(a)
		if cls[0] != classMemory {
			var needInt, needSSE int
			for _, c := range cls {
				if c == classInteger {
					needInt++
				} else {
					needSSE++
				}
			}
			if p.gprs+needInt <= sysvGPRs && p.sses+needSSE <= sysvSSEs {
				signed := a.Kind != types.StructType && isSigned(a)
				for j, c := range cls {
					pc := piece{
						arg:    i,
						off:    uintptr(j) * 8,
						size:   min(8, a.Size-uintptr(j)*8),
						signed: signed,
					}
					if c == classInteger {
						pc.kind, pc.index = slotGPR, p.gprs
						p.gprs++
					} else {
						pc.kind, pc.index = slotSSE, p.sses
						p.sses++
					}
					p.pieces = append(p.pieces, pc)
				}
				continue
			}
		}
		// MEMORY class, or not enough registers left for the whole
		// argument: it goes to the stack in eightbyte slots.
		n := int((a.Size + 7) / 8)
		for j := 0; j < n; j++ {
			p.pieces = append(p.pieces, piece{
				arg:    i,
				off:    uintptr(j) * 8,
				size:   min(8, a.Size-uintptr(j)*8),
				signed: a.Kind != types.StructType && isSigned(a),
				kind:   slotStack,
				index:  p.stack,
			})
			p.stack++
		}
	}
	if p.stack > sysvMaxStack {
		return nil, fmt.Errorf("%w: %d stack slots, limit %d", ErrTooManyArgs, p.stack, sysvMaxStack)
	}
	return p, nil
}

// fill loads argument values into a frame. ret must be non-nil when the
// result is returned in memory.
func (p *sysvPlan) fill(f *sysvFrame, ret unsafe.Pointer, args []unsafe.Pointer) {
	if p.sret {
		f.gpr[0] = uint64(uintptr(ret))
	}
	for _, pc := range p.pieces {
		w := loadWord(args[pc.arg], pc.off, pc.size, pc.signed)
		switch pc.kind {
		case slotGPR:
			f.gpr[pc.index] = w
		case slotSSE:
			f.sse[pc.index] = w
		default:
			f.stack[pc.index] = w
		}
	}
	f.nstack = uint64(p.stack)
}

// store copies a register-returned result into ret.
func (p *sysvPlan) store(ret unsafe.Pointer, f *sysvFrame) {
	if ret == nil || p.sret || len(p.retSrc) == 0 {
		return
	}
	var words [2]uint64
	for i, s := range p.retSrc {
		words[i] = f.reg(s)
	}
	storeWords(ret, words[:], p.ret.Size)
}
