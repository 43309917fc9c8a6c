// Package config loads bstree CLI configuration.
//
// Precedence (highest to lowest): flags > BSTREE_* env vars > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/iamOgunyinka/DSA/bst"
)

// Defaults.
const (
	DefaultConfigFile = "bstree.yaml"
	DefaultOrder      = "pre"
	DefaultOutput     = OutputText
	EnvPrefix         = "BSTREE_"
)

// Output formats.
const (
	OutputText  = "text"
	OutputTable = "table"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings shared by every bstree command.
type Config struct {
	// Order is the traversal strategy name accepted by bst.ParseOrder.
	Order string `koanf:"order"`
	// Reverse orders values descending instead of ascending.
	Reverse bool `koanf:"reverse"`
	// Output is "text" or "table".
	Output string `koanf:"output"`
	// Verbose enables debug logging of tree mutations.
	Verbose bool `koanf:"verbose"`

	// FileUsed is the config file that was read, empty if none.
	FileUsed string `koanf:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{Order: DefaultOrder, Output: DefaultOutput}
}

// Load builds a Config from defaults, the config file, the environment
// and the explicitly changed flags in flags (which may be nil).
//
// cfgFile names the config file; when empty, DefaultConfigFile is read
// if it exists in the working directory. An explicit file that cannot be
// read is an error.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	d := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"order":   d.Order,
		"reverse": d.Reverse,
		"output":  d.Output,
		"verbose": d.Verbose,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. config file
	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. environment: BSTREE_ORDER -> order
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. flags, only those set on the command line
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that Order and Output are recognised.
func (c *Config) Validate() error {
	if _, err := bst.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: order: %v", ErrInvalidConfig, err)
	}
	switch c.Output {
	case OutputText, OutputTable:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputText, OutputTable, c.Output)
	}

	return nil
}

// TraversalOrder returns the parsed Order. It assumes Validate passed and
// falls back to pre-order otherwise.
func (c *Config) TraversalOrder() bst.Order {
	o, err := bst.ParseOrder(c.Order)
	if err != nil {
		return bst.PreOrder
	}

	return o
}

// Less returns the comparator implied by Reverse.
func (c *Config) Less() func(a, b int) bool {
	if c.Reverse {
		return func(a, b int) bool { return a > b }
	}

	return func(a, b int) bool { return a < b }
}
