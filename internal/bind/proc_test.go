package bind

import (
	"errors"
	"testing"
	"unsafe"
)

func TestTableRegister(t *testing.T) {
	tbl := NewTable()
	a := tbl.New("b_func", Int, Int)
	b := tbl.Optional("a_func", Void)

	if got, ok := tbl.Lookup("b_func"); !ok || got != a {
		t.Errorf("Lookup(b_func) = %v, %v", got, ok)
	}
	if _, ok := tbl.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
	if !b.Optional || a.Optional {
		t.Error("Optional flag not recorded")
	}
	procs := tbl.Procs()
	if len(procs) != 2 || procs[0].Name != "a_func" || procs[1].Name != "b_func" {
		t.Errorf("Procs() not sorted by name")
	}
}

func TestTableRegisterDuplicatePanics(t *testing.T) {
	tbl := NewTable()
	tbl.New("dup", Void)
	defer func() {
		if recover() == nil {
			t.Error("duplicate declaration should panic")
		}
	}()
	tbl.New("dup", Void)
}

func TestCallUnresolvedPanics(t *testing.T) {
	p := NewTable().New("not_loaded", Void)
	if p.Available() {
		t.Fatal("unresolved proc reports Available")
	}
	defer func() {
		r := recover()
		ce, ok := r.(*CallError)
		if !ok {
			t.Fatalf("panic value = %T, want *CallError", r)
		}
		if !errors.Is(ce, ErrNotLoaded) {
			t.Errorf("error = %v, want ErrNotLoaded", ce)
		}
		if ce.Proc != "not_loaded" {
			t.Errorf("Proc = %q", ce.Proc)
		}
	}()
	p.Call(nil)
}

func TestCallArgumentCountPanics(t *testing.T) {
	p := NewTable().New("two_args", Void, Int, Int)
	p.b.Store(&bound{fn: unsafe.Pointer(p), inv: nopInvoker{}})
	defer func() {
		if _, ok := recover().(*CallError); !ok {
			t.Error("wrong argument count should panic with *CallError")
		}
	}()
	var n int32
	p.Call(nil, unsafe.Pointer(&n))
}

func TestCallUnsupportedPanicsWithABI(t *testing.T) {
	p := NewTable().New("unsupported", Void)
	p.b.Store(&bound{fn: unsafe.Pointer(p), err: ErrTooManyArgs})
	if p.Available() {
		t.Error("proc with a lowering error reports Available")
	}
	defer func() {
		ce, _ := recover().(*CallError)
		if ce == nil || !errors.Is(ce, ErrABI) {
			t.Errorf("panic = %v, want ErrABI", ce)
		}
	}()
	p.Call(nil)
}

func TestResetUnbinds(t *testing.T) {
	tbl := NewTable()
	p := tbl.New("f", Void)
	p.b.Store(&bound{fn: unsafe.Pointer(p), inv: nopInvoker{}})
	if !p.Available() || p.Addr() == nil {
		t.Fatal("stored binding not visible")
	}
	tbl.Reset()
	if p.Available() || p.Addr() != nil {
		t.Error("Reset left the proc bound")
	}
}

type nopInvoker struct{}

func (nopInvoker) invoke(fn, ret unsafe.Pointer, args []unsafe.Pointer) error { return nil }

func TestCStrings(t *testing.T) {
	if got := GoString(CString("raylib")); got != "raylib" {
		t.Errorf("GoString(CString) = %q", got)
	}
	if CStringOrNil("") != nil {
		t.Error("CStringOrNil(\"\") should be nil")
	}
	if got := GoString(nil); got != "" {
		t.Errorf("GoString(nil) = %q", got)
	}
	buf := []byte("abc\x00def")
	if got := GoStringN(&buf[0], len(buf)); got != "abc" {
		t.Errorf("GoStringN stops at NUL: got %q", got)
	}
	if got := GoStringN(&buf[0], 2); got != "ab" {
		t.Errorf("GoStringN(2) = %q", got)
	}

	cs := NewCStrings([]string{"a", "bc"})
	if cs.Len() != 2 {
		t.Fatalf("Len = %d", cs.Len())
	}
	arr := unsafe.Slice((**byte)(cs.Ptr()), 3)
	if GoString(arr[0]) != "a" || GoString(arr[1]) != "bc" || arr[2] != nil {
		t.Error("CStrings array malformed")
	}
}

func TestCandidatePaths(t *testing.T) {
	got := candidatePaths("libraylib.so", []string{"/opt/a", "", "/opt/b"})
	want := []string{"/opt/a/libraylib.so", "/opt/b/libraylib.so", "libraylib.so"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := candidatePaths("/usr/lib/libraylib.so", []string{"/opt"}); len(got) != 1 {
		t.Errorf("explicit path expanded: %v", got)
	}
}

func TestOpenErrorUnwraps(t *testing.T) {
	_, err := Open([]string{"libdefinitely-not-here-7f3a.so"}, nil)
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("error = %v, want ErrLibraryNotFound", err)
	}
	var oe *OpenError
	if !errors.As(err, &oe) || len(oe.Tried) != 1 {
		t.Errorf("OpenError.Tried = %v", oe)
	}
}
