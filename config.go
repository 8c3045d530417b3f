package raylib

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the environment configuration read by Load.
type Config struct {
	// Library is a shared library path or name tried before the platform
	// defaults.
	Library string `env:"RAYLIB_LIBRARY"`

	// SearchPath lists extra directories, separated like PATH.
	SearchPath string `env:"RAYLIB_SEARCH_PATH"`

	// TraceLevel is the initial native log level.
	TraceLevel TraceLogLevel `env:"RAYLIB_TRACE_LEVEL" envDefault:"warning"`

	// RouteTraceLog forwards native log output to Logger.
	RouteTraceLog bool `env:"RAYLIB_ROUTE_TRACELOG" envDefault:"false"`
}

// ConfigFromEnv parses Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("raylib: parse env: %w", err)
	}
	return cfg, nil
}

// SearchDirs splits SearchPath.
func (c Config) SearchDirs() []string {
	if c.SearchPath == "" {
		return nil
	}
	return filepath.SplitList(c.SearchPath)
}
