// Package config loads wordstack settings from a TOML or YAML file.
//
// The file lives at $XDG_CONFIG_HOME/wordstack/config.toml (falling back to
// ~/.config/wordstack/config.toml). Every key is optional; unset keys keep
// the built-in defaults from package pipeline. Command-line flags override
// the file, the file overrides the defaults.
//
//	endpoint   = "http://localhost:8080/path/words"
//	timeout    = "30s"
//	order      = "count"
//	mode       = "stacked"
//	width      = 1200
//	bar_height = 40
//	formats    = ["svg", "png"]
//	scale      = 2
//	top        = 25
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wordstack/pkg/errors"
	"github.com/matzehuels/wordstack/pkg/histogram"
	"github.com/matzehuels/wordstack/pkg/pipeline"
	"github.com/matzehuels/wordstack/pkg/render/chart"
)

const (
	appName  = "wordstack"
	fileName = "config.toml"
)

// Config holds the settings a config file may provide.
type Config struct {
	Endpoint  string   `toml:"endpoint" yaml:"endpoint" json:"endpoint"`
	Timeout   string   `toml:"timeout" yaml:"timeout" json:"timeout"`
	Order     string   `toml:"order" yaml:"order" json:"order"`
	Mode      string   `toml:"mode" yaml:"mode" json:"mode"`
	Width     float64  `toml:"width" yaml:"width" json:"width"`
	BarHeight float64  `toml:"bar_height" yaml:"bar_height" json:"bar_height"`
	Formats   []string `toml:"formats" yaml:"formats" json:"formats"`
	Scale     float64  `toml:"scale" yaml:"scale" json:"scale"`
	Top       int      `toml:"top" yaml:"top" json:"top"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:  pipeline.DefaultEndpoint,
		Timeout:   pipeline.DefaultTimeout.String(),
		Order:     string(pipeline.DefaultOrder),
		Mode:      string(pipeline.DefaultMode),
		Width:     pipeline.DefaultWidth,
		BarHeight: pipeline.DefaultBarHeight,
		Formats:   []string{pipeline.FormatSVG},
		Scale:     pipeline.DefaultScale,
	}
}

// DefaultPath returns the XDG location of the config file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path on top of [Default].
//
// An empty path means [DefaultPath]; a missing default file is not an
// error and yields the defaults. A missing explicit file, a file that does
// not parse, or values that fail [Config.Validate] are INVALID_CONFIG.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}

// Parse decodes data on top of [Default]. ext selects the syntax: ".yaml"
// and ".yml" are YAML, anything else is TOML.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	cfg.Formats = nil

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	}

	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{pipeline.FormatSVG}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value. Failures are INVALID_CONFIG.
func (c Config) Validate() error {
	invalid := func(err error, key string) error {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s", key)
	}

	if err := errors.ValidateURL(c.Endpoint); err != nil {
		return invalid(err, "endpoint")
	}
	if _, err := c.RequestTimeout(); err != nil {
		return invalid(err, "timeout")
	}
	if _, err := histogram.ParseOrder(c.Order); err != nil {
		return invalid(err, "order")
	}
	if _, err := chart.ParseMode(c.Mode); err != nil {
		return invalid(err, "mode")
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return invalid(err, "formats")
	}
	if c.Width <= 0 || c.BarHeight <= 0 || c.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "width, bar_height and scale must be positive")
	}
	if c.Top < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "top must not be negative, got %d", c.Top)
	}
	return nil
}

// RequestTimeout parses Timeout. An empty value means the default.
func (c Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return pipeline.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	return d, nil
}

// Apply copies the config values into the zero-valued fields of opts.
// Fields already set are left alone, and so are the fields named by
// explicit (config keys such as "top" or "bar_height"), even when zero.
// Callers pass the keys of the flags the user changed so that an explicit
// --top 0 still beats the file.
func (c Config) Apply(opts *pipeline.Options, explicit ...string) {
	fill := func(key string, zero bool) bool {
		return zero && !slices.Contains(explicit, key)
	}
	if fill("order", opts.Order == "") {
		opts.Order = c.Order
	}
	if fill("mode", opts.Mode == "") {
		opts.Mode = c.Mode
	}
	if fill("width", opts.Width == 0) {
		opts.Width = c.Width
	}
	if fill("bar_height", opts.BarHeight == 0) {
		opts.BarHeight = c.BarHeight
	}
	if fill("formats", len(opts.Formats) == 0) {
		opts.Formats = append([]string(nil), c.Formats...)
	}
	if fill("scale", opts.Scale == 0) {
		opts.Scale = c.Scale
	}
	if fill("top", opts.Top == 0) {
		opts.Top = c.Top
	}
}

// WriteTOML writes c as a TOML document.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// WriteYAML writes c as a YAML document.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
