//go:build !((linux || darwin || freebsd) && amd64)

package bind

import (
	"runtime"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

type goffiInvoker struct {
	plan *goffiPlan
	cif  types.CallInterface
}

func newInvoker(ret *Type, args []*Type) (invoker, error) {
	var (
		p   *goffiPlan
		err error
	)
	if runtime.GOOS == "windows" && runtime.GOARCH == "amd64" {
		p, err = planWin64(ret, args)
	} else {
		p, err = planPassthrough(ret, args)
	}
	if err != nil {
		return nil, err
	}
	g := &goffiInvoker{plan: p}
	if err := ffi.PrepareCallInterface(&g.cif, types.DefaultCall, p.ret, p.args); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *goffiInvoker) invoke(fn, ret unsafe.Pointer, args []unsafe.Pointer) error {
	p := g.plan
	if ret == nil && p.ret.Kind != types.VoidType {
		buf := make([]byte, max(p.size, 8))
		ret = unsafe.Pointer(&buf[0])
	}
	var keep []any
	avalue := p.values(ret, args, &keep)
	rvalue := ret
	var hidden unsafe.Pointer
	if p.sret {
		rvalue = unsafe.Pointer(&hidden)
	}
	err := ffi.CallFunction(&g.cif, fn, rvalue, avalue)
	runtime.KeepAlive(keep)
	runtime.KeepAlive(args)
	return err
}
