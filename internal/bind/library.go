package bind

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// Library is an opened shared library.
type Library struct {
	// Path is the name or path the library was opened with.
	Path string

	mu     sync.Mutex
	handle unsafe.Pointer
}

// Open opens the first loadable library. Each name is tried in every
// directory of dirs first and then as given, letting the system loader
// apply its own search rules. Names containing a path separator are only
// tried as given.
func Open(names, dirs []string) (*Library, error) {
	oe := &OpenError{}
	for _, name := range names {
		for _, path := range candidatePaths(name, dirs) {
			h, err := ffi.LoadLibrary(path)
			if err == nil {
				return &Library{Path: path, handle: h}, nil
			}
			oe.Tried = append(oe.Tried, path)
			oe.Errs = append(oe.Errs, err)
		}
	}
	return nil, oe
}

func candidatePaths(name string, dirs []string) []string {
	if strings.ContainsAny(name, `/\`) {
		return []string{name}
	}
	out := make([]string, 0, len(dirs)+1)
	for _, d := range dirs {
		if d == "" {
			continue
		}
		out = append(out, filepath.Join(d, name))
	}
	return append(out, name)
}

// Symbol returns the address of an exported symbol.
func (l *Library) Symbol(name string) (unsafe.Pointer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == nil {
		return nil, fmt.Errorf("bind: %s: %w", l.Path, ErrNotLoaded)
	}
	return ffi.GetSymbol(l.handle, name)
}

// Close releases the library. Procs resolved against it must not be called
// afterwards.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == nil {
		return nil
	}
	err := ffi.FreeLibrary(l.handle)
	l.handle = nil
	return err
}
