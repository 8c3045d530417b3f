package bind

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

type slot struct {
	kind  slotKind
	index int
}

func slotsOf(p *sysvPlan) []slot {
	out := make([]slot, len(p.pieces))
	for i, pc := range p.pieces {
		out[i] = slot{pc.kind, pc.index}
	}
	return out
}

func TestPlanSysV(t *testing.T) {
	tests := []struct {
		name  string
		ret   *Type
		args  []*Type
		want  []slot
		stack int
		sret  bool
		src   []retSource
	}{
		{
			name: "DrawCircleV",
			ret:  Void,
			args: []*Type{tVector2, Float, tColor},
			want: []slot{{slotSSE, 0}, {slotSSE, 1}, {slotGPR, 0}},
		},
		{
			name: "DrawRectangleRec",
			ret:  Void,
			args: []*Type{tRectangle, tColor},
			want: []slot{{slotSSE, 0}, {slotSSE, 1}, {slotGPR, 0}},
		},
		{
			name:  "DrawTexture",
			ret:   Void,
			args:  []*Type{tTexture, Int, Int, tColor},
			want:  []slot{{slotStack, 0}, {slotStack, 1}, {slotStack, 2}, {slotGPR, 0}, {slotGPR, 1}, {slotGPR, 2}},
			stack: 3,
		},
		{
			name:  "MeasureTextEx",
			ret:   tVector2,
			args:  []*Type{tFont, Ptr, Float, Float},
			want:  []slot{{slotStack, 0}, {slotStack, 1}, {slotStack, 2}, {slotStack, 3}, {slotStack, 4}, {slotStack, 5}, {slotGPR, 0}, {slotSSE, 0}, {slotSSE, 1}},
			stack: 6,
			src:   []retSource{srcXMM0},
		},
		{
			name: "Vector3 result",
			ret:  tVector3,
			args: []*Type{Int},
			want: []slot{{slotGPR, 0}},
			src:  []retSource{srcXMM0, srcXMM1},
		},
		{
			name:  "GetRayCollisionSphere",
			ret:   tRayHit,
			args:  []*Type{tRay, tVector3, Float},
			want:  []slot{{slotStack, 0}, {slotStack, 1}, {slotStack, 2}, {slotSSE, 0}, {slotSSE, 1}, {slotSSE, 2}},
			stack: 3,
			sret:  true,
		},
		{
			name: "hidden pointer shifts integer registers",
			ret:  tRayHit,
			args: []*Type{Int, Int},
			want: []slot{{slotGPR, 1}, {slotGPR, 2}},
			sret: true,
		},
		{
			name:  "seventh integer goes to the stack",
			ret:   Int,
			args:  []*Type{Int, Int, Int, Int, Int, Int, Int},
			want:  []slot{{slotGPR, 0}, {slotGPR, 1}, {slotGPR, 2}, {slotGPR, 3}, {slotGPR, 4}, {slotGPR, 5}, {slotStack, 0}},
			stack: 1,
			src:   []retSource{srcRAX},
		},
		{
			name:  "struct that does not fit spills whole, later scalar still uses a register",
			ret:   Void,
			args:  []*Type{Int, Int, Int, Int, Int, Struct(Int64, Int64), Int},
			want:  []slot{{slotGPR, 0}, {slotGPR, 1}, {slotGPR, 2}, {slotGPR, 3}, {slotGPR, 4}, {slotStack, 0}, {slotStack, 1}, {slotGPR, 5}},
			stack: 2,
		},
		{
			name: "mixed eightbytes result",
			ret:  Struct(Int64, Double),
			args: nil,
			want: []slot{},
			src:  []retSource{srcRAX, srcXMM0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := planSysV(tt.ret, tt.args)
			if err != nil {
				t.Fatalf("planSysV() error = %v", err)
			}
			got := slotsOf(p)
			if len(got) != len(tt.want) {
				t.Fatalf("slots = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("slot %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if p.stack != tt.stack {
				t.Errorf("stack = %d, want %d", p.stack, tt.stack)
			}
			if p.sret != tt.sret {
				t.Errorf("sret = %v, want %v", p.sret, tt.sret)
			}
			if len(p.retSrc) != len(tt.src) {
				t.Fatalf("retSrc = %v, want %v", p.retSrc, tt.src)
			}
			for i := range p.retSrc {
				if p.retSrc[i] != tt.src[i] {
					t.Errorf("retSrc[%d] = %v, want %v", i, p.retSrc[i], tt.src[i])
				}
			}
		})
	}
}

func TestPlanSysVTooManySlots(t *testing.T) {
	big := Struct(Array(Int64, sysvMaxStack+1)...)
	_, err := planSysV(Void, []*Type{big})
	if !errors.Is(err, ErrTooManyArgs) {
		t.Fatalf("error = %v, want ErrTooManyArgs", err)
	}
	if !errors.Is(err, ErrABI) {
		t.Errorf("ErrTooManyArgs should wrap ErrABI")
	}
}

func TestPlanSysVRejectsVoidArgument(t *testing.T) {
	if _, err := planSysV(Void, []*Type{Void}); !errors.Is(err, ErrABI) {
		t.Errorf("error = %v, want ErrABI", err)
	}
}

func TestSysVFill(t *testing.T) {
	p, err := planSysV(Void, []*Type{Char, tColor, Double, tTexture})
	if err != nil {
		t.Fatal(err)
	}
	var (
		c   int8 = -1
		col      = [4]uint8{1, 2, 3, 4}
		d        = 2.5
		tex      = [5]int32{7, 64, 32, 1, 7}
	)
	args := []unsafe.Pointer{
		unsafe.Pointer(&c), unsafe.Pointer(&col), unsafe.Pointer(&d), unsafe.Pointer(&tex),
	}
	var f sysvFrame
	p.fill(&f, nil, args)

	if f.gpr[0] != math.MaxUint64 {
		t.Errorf("gpr[0] = %#x, want sign-extended -1", f.gpr[0])
	}
	if f.gpr[1] != 0x04030201 {
		t.Errorf("gpr[1] = %#x, want 0x04030201", f.gpr[1])
	}
	if f.sse[0] != math.Float64bits(2.5) {
		t.Errorf("sse[0] = %#x, want bits of 2.5", f.sse[0])
	}
	if f.nstack != 3 {
		t.Fatalf("nstack = %d, want 3", f.nstack)
	}
	if f.stack[0] != 64<<32|7 || f.stack[1] != 1<<32|32 || f.stack[2] != 7 {
		t.Errorf("stack = %#x %#x %#x", f.stack[0], f.stack[1], f.stack[2])
	}
}

func TestSysVFillHiddenPointer(t *testing.T) {
	p, err := planSysV(tRayHit, []*Type{Int})
	if err != nil {
		t.Fatal(err)
	}
	var out [32]byte
	var n int32 = 5
	var f sysvFrame
	p.fill(&f, unsafe.Pointer(&out), []unsafe.Pointer{unsafe.Pointer(&n)})
	if f.gpr[0] != uint64(uintptr(unsafe.Pointer(&out))) {
		t.Errorf("gpr[0] does not hold the result address")
	}
	if f.gpr[1] != 5 {
		t.Errorf("gpr[1] = %d, want 5", f.gpr[1])
	}
}

func TestSysVStore(t *testing.T) {
	t.Run("Vector3 from XMM0 and XMM1", func(t *testing.T) {
		p, err := planSysV(tVector3, nil)
		if err != nil {
			t.Fatal(err)
		}
		f := sysvFrame{
			xmm0: uint64(math.Float32bits(2))<<32 | uint64(math.Float32bits(1)),
			xmm1: uint64(math.Float32bits(3)),
		}
		var v [3]float32
		p.store(unsafe.Pointer(&v), &f)
		if v != [3]float32{1, 2, 3} {
			t.Errorf("got %v, want [1 2 3]", v)
		}
	})
	t.Run("int64 and double from RAX and XMM0", func(t *testing.T) {
		p, err := planSysV(Struct(Int64, Double), nil)
		if err != nil {
			t.Fatal(err)
		}
		f := sysvFrame{rax: 42, rdx: 99, xmm0: math.Float64bits(0.5)}
		var v struct {
			i int64
			d float64
		}
		p.store(unsafe.Pointer(&v), &f)
		if v.i != 42 || v.d != 0.5 {
			t.Errorf("got %+v, want {42 0.5}", v)
		}
	})
	t.Run("Color from RAX", func(t *testing.T) {
		p, err := planSysV(tColor, nil)
		if err != nil {
			t.Fatal(err)
		}
		f := sysvFrame{rax: 0xAABBCCDD_04030201}
		var c [4]uint8
		p.store(unsafe.Pointer(&c), &f)
		if c != [4]uint8{1, 2, 3, 4} {
			t.Errorf("got %v, want [1 2 3 4]", c)
		}
	})
}

func TestSysVFrameLayout(t *testing.T) {
	var f sysvFrame
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"gpr", unsafe.Offsetof(f.gpr), 8},
		{"sse", unsafe.Offsetof(f.sse), 56},
		{"nstack", unsafe.Offsetof(f.nstack), 120},
		{"stack", unsafe.Offsetof(f.stack), 128},
		{"rax", unsafe.Offsetof(f.rax), 640},
		{"rdx", unsafe.Offsetof(f.rdx), 648},
		{"xmm0", unsafe.Offsetof(f.xmm0), 656},
		{"xmm1", unsafe.Offsetof(f.xmm1), 664},
		{"size", unsafe.Sizeof(f), 672},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestPlanWin64(t *testing.T) {
	p, err := planWin64(Void, []*Type{tColor, tRectangle, Int, tVector2})
	if err != nil {
		t.Fatal(err)
	}
	wantArgs := []*Type{win64Scalar(4), Ptr, Int, win64Scalar(8)}
	wantRef := []bool{false, true, false, false}
	for i := range wantArgs {
		if p.args[i] != wantArgs[i] {
			t.Errorf("args[%d] kind = %v, want %v", i, p.args[i].Kind, wantArgs[i].Kind)
		}
		if p.byRef[i] != wantRef[i] {
			t.Errorf("byRef[%d] = %v, want %v", i, p.byRef[i], wantRef[i])
		}
	}
	if p.sret {
		t.Error("void result should not use a hidden pointer")
	}
}

func TestPlanWin64Results(t *testing.T) {
	tests := []struct {
		name    string
		ret     *Type
		sret    bool
		wantErr bool
	}{
		{"Color fits a register", tColor, false, false},
		{"Vector2 fits a register", tVector2, false, false},
		{"Vector3 is returned in memory", tVector3, true, false},
		{"Rectangle is returned in memory", tRectangle, true, false},
		{"float is not supported", Float, false, true},
		{"double is not supported", Double, false, true},
		{"int", Int, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := planWin64(tt.ret, []*Type{Int})
			if tt.wantErr {
				if !errors.Is(err, ErrABI) {
					t.Fatalf("error = %v, want ErrABI", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if p.sret != tt.sret {
				t.Errorf("sret = %v, want %v", p.sret, tt.sret)
			}
			if tt.sret && (len(p.args) != 2 || p.args[0] != Ptr || p.ret != Ptr) {
				t.Errorf("hidden pointer not prepended: args=%d", len(p.args))
			}
		})
	}
}

func TestGoffiPlanValues(t *testing.T) {
	p, err := planWin64(tVector3, []*Type{tRectangle, Int})
	if err != nil {
		t.Fatal(err)
	}
	rect := [4]float32{1, 2, 3, 4}
	n := int32(9)
	var out [3]float32
	var keep []any
	vals := p.values(unsafe.Pointer(&out), []unsafe.Pointer{unsafe.Pointer(&rect), unsafe.Pointer(&n)}, &keep)
	if len(vals) != 3 {
		t.Fatalf("len(values) = %d, want 3", len(vals))
	}
	if *(*unsafe.Pointer)(vals[0]) != unsafe.Pointer(&out) {
		t.Error("hidden pointer does not address the result")
	}
	copied := *(*unsafe.Pointer)(vals[1])
	if copied == unsafe.Pointer(&rect) {
		t.Error("by-reference argument was not copied")
	}
	if got := *(*[4]float32)(copied); got != rect {
		t.Errorf("copy = %v, want %v", got, rect)
	}
	if vals[2] != unsafe.Pointer(&n) {
		t.Error("scalar argument should pass through")
	}
}

func TestLoadWord(t *testing.T) {
	s := int16(-2)
	if got := loadWord(unsafe.Pointer(&s), 0, 2, true); int64(got) != -2 {
		t.Errorf("signed = %d, want -2", int64(got))
	}
	if got := loadWord(unsafe.Pointer(&s), 0, 2, false); got != 0xFFFE {
		t.Errorf("unsigned = %#x, want 0xfffe", got)
	}
}
