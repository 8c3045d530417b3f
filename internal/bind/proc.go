package bind

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"unsafe"
)

// ErrSymbolNotFound is reported when calling an optional proc the library
// does not export.
var ErrSymbolNotFound = errors.New("bind: symbol not found")

// Proc is one C function declaration.
type Proc struct {
	Name string
	Ret  *Type
	Args []*Type

	// Optional procs may be missing from the library without failing
	// resolution.
	Optional bool

	b atomic.Pointer[bound]
}

type bound struct {
	fn  unsafe.Pointer
	inv invoker
	err error
}

// Call invokes the function. ret points at storage for the result and may
// be nil; args holds one pointer per declared argument. Calling a proc
// that is not resolved, or whose signature this platform cannot lower,
// panics with a *CallError.
func (p *Proc) Call(ret unsafe.Pointer, args ...unsafe.Pointer) {
	b := p.b.Load()
	switch {
	case b == nil:
		panic(&CallError{Proc: p.Name, Err: ErrNotLoaded})
	case b.err != nil:
		panic(&CallError{Proc: p.Name, Err: b.err})
	case len(args) != len(p.Args):
		panic(&CallError{Proc: p.Name, Err: fmt.Errorf("got %d arguments, want %d", len(args), len(p.Args))})
	}
	if err := b.inv.invoke(b.fn, ret, args); err != nil {
		panic(&CallError{Proc: p.Name, Err: err})
	}
}

// Available reports whether the proc is resolved and callable.
func (p *Proc) Available() bool {
	b := p.b.Load()
	return b != nil && b.err == nil
}

// Addr returns the resolved symbol address, or nil.
func (p *Proc) Addr() unsafe.Pointer {
	if b := p.b.Load(); b != nil {
		return b.fn
	}
	return nil
}

// Report summarizes a Resolve.
type Report struct {
	Resolved        int
	MissingOptional []string
	Unsupported     []string
}

// Table is a set of procs resolved together against one library.
type Table struct {
	mu    sync.RWMutex
	procs map[string]*Proc
	order []*Proc
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{procs: make(map[string]*Proc)}
}

// Default holds the raylib declarations.
var Default = NewTable()

// New declares a required proc in the Default table.
func New(name string, ret *Type, args ...*Type) *Proc {
	return Default.New(name, ret, args...)
}

// Optional declares an optional proc in the Default table.
func Optional(name string, ret *Type, args ...*Type) *Proc {
	return Default.Optional(name, ret, args...)
}

// New declares a required proc.
func (t *Table) New(name string, ret *Type, args ...*Type) *Proc {
	p := &Proc{Name: name, Ret: ret, Args: args}
	t.Register(p)
	return p
}

// Optional declares a proc that may be missing from the library.
func (t *Table) Optional(name string, ret *Type, args ...*Type) *Proc {
	p := &Proc{Name: name, Ret: ret, Args: args, Optional: true}
	t.Register(p)
	return p
}

// Register adds p. Declaring the same name twice is a programming error
// and panics.
func (t *Table) Register(p *Proc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, dup := t.procs[p.Name]; dup {
		panic("bind: duplicate proc " + p.Name)
	}
	t.procs[p.Name] = p
	t.order = append(t.order, p)
}

// Lookup returns the proc declared under name.
func (t *Table) Lookup(name string) (*Proc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.procs[name]
	return p, ok
}

// Procs returns the declared procs sorted by name.
func (t *Table) Procs() []*Proc {
	t.mu.RLock()
	out := append([]*Proc(nil), t.order...)
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resolve binds every proc to its symbol in lib. A missing required symbol
// fails the whole resolution with a *SymbolError and leaves every proc
// unbound. Procs whose signature cannot be lowered on this platform stay
// declared and panic with ErrABI when called.
func (t *Table) Resolve(lib *Library) (Report, error) {
	t.mu.RLock()
	procs := append([]*Proc(nil), t.order...)
	t.mu.RUnlock()

	var (
		rep     Report
		missing []string
		staged  = make([]*bound, len(procs))
	)
	for i, p := range procs {
		fn, err := lib.Symbol(p.Name)
		if err != nil || fn == nil {
			if p.Optional {
				rep.MissingOptional = append(rep.MissingOptional, p.Name)
				staged[i] = &bound{err: ErrSymbolNotFound}
				continue
			}
			missing = append(missing, p.Name)
			continue
		}
		inv, err := newInvoker(p.Ret, p.Args)
		if err != nil {
			rep.Unsupported = append(rep.Unsupported, p.Name)
			staged[i] = &bound{fn: fn, err: err}
			continue
		}
		staged[i] = &bound{fn: fn, inv: inv}
		rep.Resolved++
	}
	if len(missing) > 0 {
		t.Reset()
		sort.Strings(missing)
		return Report{}, &SymbolError{Library: lib.Path, Missing: missing}
	}
	for i, p := range procs {
		p.b.Store(staged[i])
	}
	return rep, nil
}

// Reset unbinds every proc.
func (t *Table) Reset() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, p := range t.order {
		p.b.Store(nil)
	}
}
