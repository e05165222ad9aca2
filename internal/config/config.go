package config

import (
	"flag"
	"os"

	"github.com/AlenaMolokova/cardcheck/internal/constants"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	RunAddr  string `env:"RUN_ADDRESS"`
	LogLevel string `env:"LOG_LEVEL"`
}

// CLIConfig configures the console binary, which has no listener.
type CLIConfig struct {
	LogLevel string `env:"LOG_LEVEL"`
}

func Default() Config {
	return Config{
		RunAddr:  constants.DefaultRunAddr,
		LogLevel: constants.DefaultLogLevel,
	}
}

func NewConfig(base Config) (*Config, error) {
	return Parse(os.Args[0], os.Args[1:], base, nil)
}

// Parse applies flags on top of base, then environment variables on top of flags.
// A nil environ means the process environment.
func Parse(name string, args []string, base Config, environ map[string]string) (*Config, error) {
	cfg := base

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	return &cfg, nil
}

func NewCLIConfig() (*CLIConfig, error) {
	return ParseCLI(os.Args[0], os.Args[1:], nil)
}

// ParseCLI accepts only -l, then lets LOG_LEVEL override it.
func ParseCLI(name string, args []string, environ map[string]string) (*CLIConfig, error) {
	cfg := CLIConfig{LogLevel: constants.CLILogLevel}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	return &cfg, nil
}
