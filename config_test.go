package raylib

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RAYLIB_LIBRARY", "RAYLIB_SEARCH_PATH", "RAYLIB_TRACE_LEVEL", "RAYLIB_ROUTE_TRACELOG"} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearConfigEnv(t)
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Library != "" || cfg.SearchPath != "" || cfg.TraceLevel != LogWarning || cfg.RouteTraceLog {
		t.Errorf("defaults = %+v", cfg)
	}
	if dirs := cfg.SearchDirs(); dirs != nil {
		t.Errorf("SearchDirs() = %q, want nil", dirs)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	sp := string(filepath.ListSeparator)
	t.Setenv("RAYLIB_LIBRARY", "custom.so")
	t.Setenv("RAYLIB_SEARCH_PATH", "lib"+sp+"vendor")
	t.Setenv("RAYLIB_TRACE_LEVEL", "debug")
	t.Setenv("RAYLIB_ROUTE_TRACELOG", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Library != "custom.so" || cfg.TraceLevel != LogDebug || !cfg.RouteTraceLog {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.SearchDirs(); !reflect.DeepEqual(got, []string{"lib", "vendor"}) {
		t.Errorf("SearchDirs() = %q", got)
	}
}

func TestConfigFromEnvBadLevel(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("RAYLIB_TRACE_LEVEL", "loud")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("unknown trace level accepted")
	}
}

func TestTraceLogLevelText(t *testing.T) {
	for l := LogAll; l <= LogNone; l++ {
		var got TraceLogLevel
		if err := got.UnmarshalText([]byte(l.String())); err != nil || got != l {
			t.Errorf("UnmarshalText(%q) = %v, %v", l.String(), got, err)
		}
	}
	var l TraceLogLevel
	err := l.UnmarshalText([]byte("verbose"))
	var tle *TraceLogLevelError
	if !errors.As(err, &tle) || tle.Value != "verbose" {
		t.Errorf("UnmarshalText(verbose) = %v", err)
	}
	if s := TraceLogLevel(42).String(); s != "unknown" {
		t.Errorf("String() = %q", s)
	}
}
