// Package config resolves runtime settings from defaults, VICRUSH_* environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-crush/constants"
)

// EnvPrefix namespaces every environment variable
const EnvPrefix = "VICRUSH_"

// Config holds everything the binaries need to start a session
type Config struct {
	// Seed fixes the token generator; 0 draws a random seed
	Seed   uint64 `env:"SEED"`
	Target int    `env:"TARGET"`
	Moves  int    `env:"MOVES"`
	Mute   bool   `env:"MUTE"`
	Debug  bool   `env:"DEBUG"`
	LogDir string `env:"LOG_DIR"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Target: constants.DefaultTargetScore,
		Moves:  constants.DefaultMoveBudget,
		LogDir: "logs",
	}
}

// Load applies environment then flags on top of Default.
// environ overrides the process environment when non-nil.
func Load(name string, args []string, environ map[string]string) (Config, error) {
	cfg := Default()

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "token generator seed (0 = random)")
	fs.IntVar(&cfg.Target, "target", cfg.Target, "score needed to win")
	fs.IntVar(&cfg.Moves, "moves", cfg.Moves, "committed swaps per game")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug log")
	fs.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "debug log directory")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a playable game
func (c Config) Validate() error {
	if c.Target <= 0 {
		return errors.Errorf("target must be positive, got %d", c.Target)
	}
	if c.Moves <= 0 {
		return errors.Errorf("moves must be positive, got %d", c.Moves)
	}
	if c.Debug && c.LogDir == "" {
		return errors.New("debug logging needs a log directory")
	}
	return nil
}
