package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/mstour/dataset"
	"github.com/katalvlaran/mstour/prim_kruskal"
)

// envPrefix namespaces every environment variable, e.g. MSTOUR_START.
const envPrefix = "MSTOUR"

// Config holds everything the driver needs; nothing is read from ambient state
// after loadConfig returns.
type Config struct {
	File        string `envconfig:"FILE" default:"CrimeLatLonXY1990.csv"`
	Start       int    `envconfig:"START" default:"0"`
	End         int    `envconfig:"END" default:"9"`
	Root        int    `envconfig:"ROOT" default:"0"`
	Method      string `envconfig:"METHOD" default:"prim"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`
	MetricsFile string `envconfig:"METRICS_FILE"`
	BFS         bool   `envconfig:"BFS" default:"false"`
}

// Config validation errors
var (
	ErrInvalidFile      = errors.New("file cannot be empty")
	ErrInvalidRange     = errors.New("start must be >= 0 and end >= start")
	ErrInvalidRoot      = errors.New("root must be within [0, end-start]")
	ErrInvalidMethod    = errors.New("method must be 'prim' or 'kruskal'")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
)

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		File:      dataset.DefaultFile,
		Start:     0,
		End:       9,
		Root:      0,
		Method:    prim_kruskal.MethodPrim,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.File == "" {
		return ErrInvalidFile
	}
	if cfg.Start < 0 || cfg.End < cfg.Start {
		return ErrInvalidRange
	}
	if cfg.Root < 0 || cfg.Root > cfg.End-cfg.Start {
		return ErrInvalidRoot
	}
	if cfg.Method != prim_kruskal.MethodPrim && cfg.Method != prim_kruskal.MethodKruskal {
		return ErrInvalidMethod
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	return nil
}

// loadConfig layers defaults, an optional dotenv file, MSTOUR_* variables and
// finally command-line flags. A missing dotenv file is not an error.
func loadConfig(args []string, dotenv string, stderr io.Writer) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	cfg := DefaultConfig()
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	fset := flag.NewFlagSet("mstour", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&cfg.File, "file", cfg.File, "CSV file with a header row and x,y in the first two fields")
	fset.IntVar(&cfg.Start, "start", cfg.Start, "first data row (zero-based, inclusive)")
	fset.IntVar(&cfg.End, "end", cfg.End, "last data row (zero-based, inclusive)")
	fset.IntVar(&cfg.Root, "root", cfg.Root, "vertex where the tree and the tour start")
	fset.StringVar(&cfg.Method, "method", cfg.Method, "MST algorithm: prim or kruskal")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fset.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "json or console")
	fset.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus textfile metrics here")
	fset.BoolVar(&cfg.BFS, "bfs", cfg.BFS, "log the breadth-first order of the complete graph at debug level")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
