package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config carries the few knobs the runner needs. The canonical puzzle
// inputs live under InputRoot as dayN/input.txt, which is what the part1
// and part2 convenience subcommands read.
type Config struct {
	InputRoot string `yaml:"input_root"`
	Verbose   bool   `yaml:"verbose"`
}

func Default() Config {
	return Config{
		InputRoot: ".",
	}
}

// DefaultPath returns the conventional config location under the user's
// config directory, or "" when that directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "advent", "config.yaml")
}

// Load reads a yaml config from path, falling back to defaults when the
// file does not exist. An empty path always yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.InputRoot == "" {
		cfg.InputRoot = "."
	}
	return cfg, nil
}

// DayInput returns the canonical input path for a puzzle day.
func (c Config) DayInput(day int) string {
	return filepath.Join(c.InputRoot, "day"+strconv.Itoa(day), "input.txt")
}
