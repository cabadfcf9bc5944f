package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shiftzeros/internal/algo"
)

const (
	DefaultTheme     = "cyberpunk"
	DefaultCodeStyle = "monokai"
	DefaultLogLevel  = "info"
)

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Seed      int64     `yaml:"seed"`
	List      []int     `yaml:"list,omitempty"`
	Preset    string    `yaml:"preset,omitempty"`
	Theme     string    `yaml:"theme"`
	CodeStyle string    `yaml:"code_style"`
	Automated bool      `yaml:"automated"`
	Log       LogConfig `yaml:"log"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		CodeStyle: DefaultCodeStyle,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields that cannot be repaired with a default.
func (c *Config) Validate() error {
	if len(c.List) > 0 && len(c.List) != algo.ListLen {
		return fmt.Errorf("%w: list has %d numbers, want %d", ErrInvalid, len(c.List), algo.ListLen)
	}
	if c.Preset != "" && GetPreset(c.Preset) == nil {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, c.Preset)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Numbers returns the fixed seed list, if any: an explicit list wins over a
// preset. A nil result means random lists.
func (c *Config) Numbers() []int {
	if len(c.List) > 0 {
		return c.List
	}
	if p := GetPreset(c.Preset); p != nil {
		return p.List
	}
	return nil
}

// Source builds the list generator the configuration describes.
func (c *Config) Source() (algo.Source, error) {
	if nums := c.Numbers(); nums != nil {
		src, err := algo.NewFixedSource(nums)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return algo.NewRandomSource(c.Seed), nil
}

// ParseList parses a comma or space separated list of integers.
func ParseList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: list entry %q", ErrInvalid, f)
		}
		out = append(out, n)
	}
	return out, nil
}
