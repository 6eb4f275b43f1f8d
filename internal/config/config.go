package config

import (
	"cmp"
	"fmt"
	"os"
	"strconv"
)

const (
	envDebug = "LIBRARY_DEBUG"
	envSeed  = "LIBRARY_SEED"
)

type Config struct {
	Debug    bool
	SeedPath string
}

// Resolve applies environment overrides on top of the flag values in cfg.
func Resolve(cfg Config) (*Config, error) {
	d := cmp.Or(os.Getenv(envDebug), strconv.FormatBool(cfg.Debug))
	debug, err := strconv.ParseBool(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", envDebug, err)
	}
	return &Config{
		Debug:    debug,
		SeedPath: cmp.Or(os.Getenv(envSeed), cfg.SeedPath),
	}, nil
}
