// Package config provides configuration management for the gftables tool.
//
// Settings are read from a YAML file and from GFTABLES_* environment
// variables, which take precedence. The library packages never read the
// environment; the CLI turns a Config into explicit backend options.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/Davincible/guff/pkg/backend"
	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

// EnvPrefix is the prefix of environment variables overriding the file,
// e.g. GFTABLES_BACKEND_MAX_TABLE_BITS.
const EnvPrefix = "GFTABLES"

// Config represents the main configuration structure
type Config struct {
	Backend BackendConfig `mapstructure:"backend" yaml:"backend"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
}

// BackendConfig controls how the switchboard picks an implementation.
type BackendConfig struct {
	Kinds            []string `mapstructure:"kinds" yaml:"kinds"`                           // Empty: default plan per width
	MaxTableBits     int      `mapstructure:"max_table_bits" yaml:"max_table_bits"`         // Default: 16
	Embedded         bool     `mapstructure:"embedded" yaml:"embedded"`                     // Default: true
	SelfCheckSamples int      `mapstructure:"self_check_samples" yaml:"self_check_samples"` // Default: 4096, 0 disables
	HostTuning       bool     `mapstructure:"host_tuning" yaml:"host_tuning"`               // Demote tables that spill the L2 cache
}

// OutputConfig contains defaults for generated table files.
type OutputConfig struct {
	Format    string `mapstructure:"format" yaml:"format"`       // go or bin
	Package   string `mapstructure:"package" yaml:"package"`     // Go package of generated sources
	Directory string `mapstructure:"directory" yaml:"directory"` // Where generated files are written
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor    bool   `mapstructure:"use_color" yaml:"use_color"`       // Enable colored output
	ProgressBar bool   `mapstructure:"progress_bar" yaml:"progress_bar"` // Show progress indicators
	Verbosity   string `mapstructure:"verbosity" yaml:"verbosity"`       // quiet, normal, verbose
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			MaxTableBits:     tables.DefaultLimits.MaxTableBits,
			Embedded:         true,
			SelfCheckSamples: backend.DefaultSelfCheckSamples,
		},
		Output: OutputConfig{
			Format:    "go",
			Package:   "tables",
			Directory: ".",
		},
		UI: UIConfig{
			UseColor:    true,
			ProgressBar: true,
			Verbosity:   "normal",
		},
	}
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("backend.kinds", c.Backend.Kinds)
	v.SetDefault("backend.max_table_bits", c.Backend.MaxTableBits)
	v.SetDefault("backend.embedded", c.Backend.Embedded)
	v.SetDefault("backend.self_check_samples", c.Backend.SelfCheckSamples)
	v.SetDefault("backend.host_tuning", c.Backend.HostTuning)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.package", c.Output.Package)
	v.SetDefault("output.directory", c.Output.Directory)
	v.SetDefault("ui.use_color", c.UI.UseColor)
	v.SetDefault("ui.progress_bar", c.UI.ProgressBar)
	v.SetDefault("ui.verbosity", c.UI.Verbosity)
}

func newViper(c *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v, c)
	return v
}

// Path returns the configuration file path
func Path() (string, error) {
	if custom := os.Getenv(EnvPrefix + "_CONFIG"); custom != "" {
		return custom, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gftables", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating home directory")
	}
	return filepath.Join(home, ".config", "gftables", "config.yaml"), nil
}

// Load reads the configuration at path, or at Path() when path is empty.
// A missing file is not an error: defaults and the environment apply.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			return nil, err
		}
	}

	v := newViper(DefaultConfig())
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &c, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, c)
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}

// Validate checks values viper can not type-check.
func (c *Config) Validate() error {
	for _, k := range c.Backend.Kinds {
		if _, ok := field.ParseKind(k); !ok {
			return errors.Newf("backend.kinds: unknown backend kind %q", k)
		}
	}
	if c.Backend.MaxTableBits < 0 || c.Backend.MaxTableBits > tables.MaxIndexBits {
		return errors.Newf("backend.max_table_bits %d not in 0..%d", c.Backend.MaxTableBits, tables.MaxIndexBits)
	}
	if c.Backend.SelfCheckSamples < 0 {
		return errors.Newf("backend.self_check_samples %d is negative", c.Backend.SelfCheckSamples)
	}
	if !slices.Contains([]string{"go", "bin"}, c.Output.Format) {
		return errors.Newf("output.format %q is neither go nor bin", c.Output.Format)
	}
	if !slices.Contains([]string{"quiet", "normal", "verbose"}, c.UI.Verbosity) {
		return errors.Newf("ui.verbosity %q is not quiet, normal or verbose", c.UI.Verbosity)
	}
	return nil
}

// BackendOptions turns the backend section into switchboard options.
func (c *Config) BackendOptions() ([]backend.Option, error) {
	b := c.Backend
	opts := []backend.Option{
		backend.WithLimits(tables.Limits{MaxTableBits: b.MaxTableBits}),
		backend.WithSelfCheck(b.SelfCheckSamples),
	}
	if len(b.Kinds) > 0 {
		kinds := make([]field.Kind, 0, len(b.Kinds))
		for _, s := range b.Kinds {
			k, ok := field.ParseKind(s)
			if !ok {
				return nil, errors.Newf("backend.kinds: unknown backend kind %q", s)
			}
			kinds = append(kinds, k)
		}
		opts = append(opts, backend.WithKinds(kinds...))
	}
	if !b.Embedded {
		opts = append(opts, backend.WithoutEmbedded())
	}
	if b.HostTuning {
		opts = append(opts, backend.WithHost(backend.DetectHost()))
	}
	return opts, nil
}
