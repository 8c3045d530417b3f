package raylib

import (
	"log/slog"
	"runtime"
)

// Option configures Load. Options win over the environment.
//
// Example:
//
//	err := raylib.Load(
//	    raylib.WithSearchPaths("./lib"),
//	    raylib.WithTraceLogRouting(true),
//	)
type Option func(*loadOptions)

type loadOptions struct {
	library       string
	searchPaths   []string
	traceLevel    TraceLogLevel
	routeTraceLog bool
	logger        *slog.Logger
	envLibrary    string
}

func optionsFromConfig(cfg Config) loadOptions {
	return loadOptions{
		searchPaths:   cfg.SearchDirs(),
		traceLevel:    cfg.TraceLevel,
		routeTraceLog: cfg.RouteTraceLog,
		envLibrary:    cfg.Library,
	}
}

// WithLibraryPath sets the shared library to open first.
func WithLibraryPath(path string) Option {
	return func(o *loadOptions) {
		o.library = path
	}
}

// WithSearchPaths replaces the directories searched for the library.
func WithSearchPaths(dirs ...string) Option {
	return func(o *loadOptions) {
		o.searchPaths = dirs
	}
}

// WithTraceLogLevel sets the native log level applied after loading.
func WithTraceLogLevel(level TraceLogLevel) Option {
	return func(o *loadOptions) {
		o.traceLevel = level
	}
}

// WithTraceLogRouting forwards native log output to Logger.
func WithTraceLogRouting(on bool) Option {
	return func(o *loadOptions) {
		o.routeTraceLog = on
	}
}

// WithLogger calls SetLogger before loading.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		o.logger = l
	}
}

// libraryNames returns the names Load tries, in order.
func (o *loadOptions) libraryNames() []string {
	var names []string
	if o.library != "" {
		names = append(names, o.library)
	}
	if o.envLibrary != "" && o.envLibrary != o.library {
		names = append(names, o.envLibrary)
	}
	return append(names, platformLibraryNames(runtime.GOOS)...)
}

func platformLibraryNames(goos string) []string {
	switch goos {
	case "windows":
		return []string{"raylib.dll", "libraylib.dll"}
	case "darwin":
		return []string{"libraylib.500.dylib", "libraylib.5.0.0.dylib", "libraylib.dylib"}
	}
	return []string{"libraylib.so.500", "libraylib.so.5.0.0", "libraylib.so"}
}
