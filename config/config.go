// Package config loads the TOML configuration consumed by the command-line
// tools.  Every field has a sensible default, so an absent or partial file
// still yields a runnable setup.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config collects the knobs of the engine binaries.
type Config struct {
	// Depth at which the alpha-beta search evaluates leaves.
	SearchDepth int `toml:"search_depth"`
	// FEN of the position the game starts from.
	StartFEN string `toml:"start_fen"`
	// Agent kinds per side: "tomato" or "random".
	WhiteAgent string `toml:"white_agent"`
	BlackAgent string `toml:"black_agent"`
	// Safety cap on the number of plies a driver plays out.
	MaxMoves int `toml:"max_moves"`
	// Log level name understood by go-logging: DEBUG, INFO, NOTICE, ...
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SearchDepth: 3,
		StartFEN:    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		WhiteAgent:  "tomato",
		BlackAgent:  "tomato",
		MaxMoves:    256,
		LogLevel:    "INFO",
	}
}

// Load reads a TOML file over the defaults.  Unknown keys are rejected so a
// typo does not silently fall back to a default.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}
