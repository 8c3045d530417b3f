//go:build (linux || darwin || freebsd) && amd64

package bind

import (
	"runtime"
	"sync"
	"unsafe"
)

//go:linkname runtime_cgocall runtime.cgocall
func runtime_cgocall(fn uintptr, arg unsafe.Pointer) int32

// callSysVABI0 is the address of the trampoline in call_sysv_amd64.s. It
// runs on the system stack through runtime.cgocall and takes a *sysvFrame.
var callSysVABI0 uintptr

var framePool = sync.Pool{New: func() any { return new(sysvFrame) }}

type sysvInvoker struct {
	plan *sysvPlan
}

func newInvoker(ret *Type, args []*Type) (invoker, error) {
	p, err := planSysV(ret, args)
	if err != nil {
		return nil, err
	}
	return &sysvInvoker{plan: p}, nil
}

func (s *sysvInvoker) invoke(fn, ret unsafe.Pointer, args []unsafe.Pointer) error {
	p := s.plan
	if p.sret && ret == nil {
		buf := make([]byte, p.ret.Size)
		ret = unsafe.Pointer(&buf[0])
	}
	f := framePool.Get().(*sysvFrame)
	*f = sysvFrame{fn: uintptr(fn)}
	p.fill(f, ret, args)
	runtime_cgocall(callSysVABI0, unsafe.Pointer(f))
	p.store(ret, f)
	runtime.KeepAlive(args)
	runtime.KeepAlive(ret)
	framePool.Put(f)
	return nil
}
