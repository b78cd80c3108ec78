// Package project loads lox.toml, the optional per-project configuration
// for the CLI and REPL. Flags always win over file values.
package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory and its parents.
const ConfigFileName = "lox.toml"

// ReplConfig is the [repl] section.
type ReplConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

// DiagnosticsConfig is the [diagnostics] section.
type DiagnosticsConfig struct {
	Max   int    `toml:"max-diagnostics"`
	Color string `toml:"color"`
}

// Config is the full lox.toml shape.
type Config struct {
	Repl        ReplConfig        `toml:"repl"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// DefaultConfig returns the values used when no lox.toml exists.
func DefaultConfig() Config {
	return Config{
		Repl: ReplConfig{
			Prompt:  "> ",
			History: ".lox_history",
		},
		Diagnostics: DiagnosticsConfig{
			Max:   100,
			Color: "auto",
		},
	}
}

// LoadConfig reads a lox.toml, layering it over the defaults. Unknown keys
// are rejected so a typo does not silently fall back to a default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New("unknown key in " + path + ": " + undecoded[0].String())
	}
	return cfg, nil
}

// FindConfig walks from dir upward looking for a lox.toml. Missing config
// is not an error; ok is simply false.
func FindConfig(dir string) (Config, string, bool, error) {
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadConfig(path)
			if err != nil {
				return Config{}, path, false, err
			}
			return cfg, path, true, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, "", false, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultConfig(), "", false, nil
		}
		dir = parent
	}
}
