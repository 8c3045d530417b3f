package raylib

import (
	"fmt"
	"sync"

	"github.com/gogpu/raylib/internal/bind"
)

var (
	libMu sync.Mutex
	lib   *bind.Library

	unloadHooks []func()
)

// Load opens the raylib shared library and resolves every binding of this
// package and of rlgl. It must run before any other call.
//
// The library is looked up as WithLibraryPath, then RAYLIB_LIBRARY, then the
// platform names (libraylib.so.500, libraylib.dylib, raylib.dll, ...), each
// in every search directory first and then through the system loader.
// Missing required functions fail with *SymbolError; functions absent from
// some raylib builds are only logged.
func Load(opts ...Option) error {
	libMu.Lock()
	defer libMu.Unlock()
	if lib != nil {
		return ErrAlreadyLoaded
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		return err
	}
	o := optionsFromConfig(cfg)
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}
	log := Logger()

	l, err := bind.Open(o.libraryNames(), o.searchPaths)
	if err != nil {
		return err
	}
	rep, err := bind.Default.Resolve(l)
	if err != nil {
		l.Close()
		return err
	}
	lib = l

	log.Info("raylib: library loaded", "path", l.Path, "functions", rep.Resolved)
	for _, name := range rep.MissingOptional {
		log.Warn("raylib: optional function not exported", "function", name)
	}
	for _, name := range rep.Unsupported {
		log.Warn("raylib: function signature not callable on this platform", "function", name)
	}

	SetTraceLogLevel(o.traceLevel)
	if o.routeTraceLog {
		if err := RouteTraceLog(); err != nil {
			log.Warn("raylib: trace log routing unavailable", "err", err)
		}
	}
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad(opts ...Option) {
	if err := Load(opts...); err != nil {
		panic(fmt.Sprintf("raylib: %v", err))
	}
}

// IsLoaded reports whether Load succeeded and Unload has not run since.
func IsLoaded() bool {
	libMu.Lock()
	defer libMu.Unlock()
	return lib != nil
}

// Unload unbinds every function and closes the library. The window and
// audio device must be closed first.
func Unload() error {
	libMu.Lock()
	defer libMu.Unlock()
	if lib == nil {
		return nil
	}
	for _, h := range unloadHooks {
		h()
	}
	bind.Default.Reset()
	err := lib.Close()
	Logger().Info("raylib: library unloaded", "path", lib.Path)
	lib = nil
	return err
}

// onUnload registers cleanup for package state tied to the loaded library.
func onUnload(f func()) {
	unloadHooks = append(unloadHooks, f)
}
