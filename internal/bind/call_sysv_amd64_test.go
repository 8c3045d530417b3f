//go:build linux && amd64

package bind

import (
	"testing"
	"unsafe"
)

func openLibc(t *testing.T) *Library {
	t.Helper()
	lib, err := Open([]string{"libc.so.6"}, nil)
	if err != nil {
		t.Skipf("libc not loadable: %v", err)
	}
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestTrampolineLibc(t *testing.T) {
	lib := openLibc(t)
	tbl := NewTable()
	var (
		abs      = tbl.New("abs", Int, Int)
		div      = tbl.New("div", Struct(Int, Int), Int, Int)
		ldiv     = tbl.New("ldiv", Struct(Long, Long), Long, Long)
		strlen   = tbl.New("strlen", UInt64, Ptr)
		atof     = tbl.New("atof", Double, Ptr)
		snprintf = tbl.New("snprintf", Int, Ptr, UInt64, Ptr, Double, Int)
		missing  = tbl.Optional("raylib_symbol_that_libc_lacks", Void)
	)
	rep, err := tbl.Resolve(lib)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rep.Resolved != 6 || len(rep.MissingOptional) != 1 {
		t.Errorf("report = %+v", rep)
	}
	if missing.Available() {
		t.Error("missing optional proc reports Available")
	}

	n := int32(-7)
	var r int32
	abs.Call(unsafe.Pointer(&r), unsafe.Pointer(&n))
	if r != 7 {
		t.Errorf("abs(-7) = %d", r)
	}

	a, b := int32(17), int32(5)
	var qr struct{ quot, rem int32 }
	div.Call(unsafe.Pointer(&qr), unsafe.Pointer(&a), unsafe.Pointer(&b))
	if qr.quot != 3 || qr.rem != 2 {
		t.Errorf("div(17, 5) = %+v", qr)
	}

	la, lb := int64(-100), int64(7)
	var lqr struct{ quot, rem int64 }
	ldiv.Call(unsafe.Pointer(&lqr), unsafe.Pointer(&la), unsafe.Pointer(&lb))
	if lqr.quot != -14 || lqr.rem != -2 {
		t.Errorf("ldiv(-100, 7) = %+v", lqr)
	}

	s := CString("hello")
	var l uint64
	strlen.Call(unsafe.Pointer(&l), unsafe.Pointer(&s))
	if l != 5 {
		t.Errorf("strlen = %d", l)
	}

	num := CString("2.25")
	var f float64
	atof.Call(unsafe.Pointer(&f), unsafe.Pointer(&num))
	if f != 2.25 {
		t.Errorf("atof = %v", f)
	}

	buf := make([]byte, 32)
	dst := &buf[0]
	size := uint64(len(buf))
	format := CString("%.1f/%d")
	d := 2.5
	i := int32(42)
	var written int32
	snprintf.Call(unsafe.Pointer(&written),
		unsafe.Pointer(&dst), unsafe.Pointer(&size), unsafe.Pointer(&format),
		unsafe.Pointer(&d), unsafe.Pointer(&i))
	if got := GoString(dst); got != "2.5/42" || written != 6 {
		t.Errorf("snprintf = %q (%d)", got, written)
	}
}

func TestResolveMissingRequired(t *testing.T) {
	lib := openLibc(t)
	tbl := NewTable()
	abs := tbl.New("abs", Int, Int)
	tbl.New("raylib_symbol_that_libc_lacks", Void)
	_, err := tbl.Resolve(lib)
	se, ok := err.(*SymbolError)
	if !ok {
		t.Fatalf("error = %v, want *SymbolError", err)
	}
	if len(se.Missing) != 1 || se.Missing[0] != "raylib_symbol_that_libc_lacks" {
		t.Errorf("Missing = %v", se.Missing)
	}
	if abs.Available() {
		t.Error("failed resolution left procs bound")
	}
}
