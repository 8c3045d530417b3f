package raylib

import (
	"bytes"
	"log/slog"
	"reflect"
	"runtime"
	"testing"
)

func TestLoadOptionsLibraryNames(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		opts []Option
		want []string
	}{
		{
			name: "defaults",
			want: platformLibraryNames(runtime.GOOS),
		},
		{
			name: "environment library",
			cfg:  Config{Library: "/opt/raylib/libraylib.so"},
			want: append([]string{"/opt/raylib/libraylib.so"}, platformLibraryNames(runtime.GOOS)...),
		},
		{
			name: "option before environment",
			cfg:  Config{Library: "env.so"},
			opts: []Option{WithLibraryPath("opt.so")},
			want: append([]string{"opt.so", "env.so"}, platformLibraryNames(runtime.GOOS)...),
		},
		{
			name: "same library once",
			cfg:  Config{Library: "same.so"},
			opts: []Option{WithLibraryPath("same.so")},
			want: append([]string{"same.so"}, platformLibraryNames(runtime.GOOS)...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := optionsFromConfig(tt.cfg)
			for _, opt := range tt.opts {
				opt(&o)
			}
			if got := o.libraryNames(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("libraryNames() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionsOverrideConfig(t *testing.T) {
	o := optionsFromConfig(Config{SearchPath: "a", TraceLevel: LogInfo})
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	for _, opt := range []Option{
		WithSearchPaths("x", "y"),
		WithTraceLogLevel(LogError),
		WithTraceLogRouting(true),
		WithLogger(logger),
	} {
		opt(&o)
	}
	if !reflect.DeepEqual(o.searchPaths, []string{"x", "y"}) {
		t.Errorf("searchPaths = %q", o.searchPaths)
	}
	if o.traceLevel != LogError || !o.routeTraceLog || o.logger != logger {
		t.Errorf("options = %+v", o)
	}
}

func TestPlatformLibraryNames(t *testing.T) {
	tests := []struct {
		goos  string
		first string
	}{
		{"linux", "libraylib.so.500"},
		{"freebsd", "libraylib.so.500"},
		{"darwin", "libraylib.500.dylib"},
		{"windows", "raylib.dll"},
	}
	for _, tt := range tests {
		names := platformLibraryNames(tt.goos)
		if len(names) == 0 || names[0] != tt.first {
			t.Errorf("platformLibraryNames(%q) = %q, want first %q", tt.goos, names, tt.first)
		}
	}
}
