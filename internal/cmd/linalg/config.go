// Package linalg implements the linalg command: it evaluates a YAML workload
// of matrices, vectors and operations and prints the results.
package linalg

import (
	"flag"
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/matrix"
)

// Config holds linalg command configuration.
type Config struct {
	Workload  string  `env:"LINALG_WORKLOAD"`
	FailFast  bool    `env:"LINALG_FAIL_FAST"`
	Verbose   bool    `env:"LINALG_VERBOSE"`
	Tolerance float64 `env:"LINALG_SINGULAR_TOLERANCE" envDefault:"1e-10"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Workload, "workload", cfg.Workload, "path to workload yaml file")
	fs.BoolVar(&cfg.FailFast, "fail-fast", cfg.FailFast, "stop at the first failing operation")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log each operation to stderr")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "absolute determinant threshold for inverse")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance < 0 {
		return Config{}, fmt.Errorf("tolerance must be finite and >= 0, got %v", cfg.Tolerance)
	}
	return cfg, nil
}

// matrixOptions maps the command config onto the library's numeric policy.
func (c Config) matrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithSingularTolerance(c.Tolerance)}
}
