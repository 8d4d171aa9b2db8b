package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when no config path is given and it exists.
const DefaultConfigFile = "aoc.yaml"

// Config controls where inputs are read from and how verbose the runner is.
type Config struct {
	InputDir     string `yaml:"input_dir"`
	InputPattern string `yaml:"input_pattern"`
	Debug        bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		InputDir:     "inputs",
		InputPattern: "day%02d.txt",
	}
}

// LoadConfig builds a Config from, in increasing precedence: defaults, the
// YAML file at path (or DefaultConfigFile if path is empty and the file
// exists), and the AOC_INPUT_DIR, AOC_INPUT_PATTERN and AOC_DEBUG
// environment variables. A .env file in the working directory is loaded
// into the environment first if present.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	name := path
	if name == "" {
		name = DefaultConfigFile
	}
	data, err := os.ReadFile(name)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", name, err)
		}
	case path == "" && errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", name, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}
	if v := os.Getenv("AOC_INPUT_DIR"); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv("AOC_INPUT_PATTERN"); v != "" {
		cfg.InputPattern = v
	}
	if v := os.Getenv("AOC_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("AOC_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	return cfg, nil
}

// Source returns the input source described by c.
func (c Config) Source() DirSource {
	return DirSource{Dir: c.InputDir, Pattern: c.InputPattern}
}
