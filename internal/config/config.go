// Package config loads generator defaults from an optional HCL file and the
// QRGEN_* environment. Sources are layered, each overriding the previous:
// built-in defaults, the HCL file, the environment, and finally explicit
// command-line flags applied by the caller with Merge.
package config

import (
	"fmt"

	"github.com/ankek/terraform-provider-qrcode/internal/logger"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "QRGEN_"

// DefaultDotEnv is the dotenv file read by Load when no environment is given.
const DefaultDotEnv = ".env"

// Config holds the rendering defaults. Empty fields are unset and do not
// override lower layers when merged.
type Config struct {
	Style     string `hcl:"style,optional" env:"STYLE"`
	FillColor string `hcl:"fill_color,optional" env:"FILL_COLOR"`
	BackColor string `hcl:"back_color,optional" env:"BACK_COLOR"`
	LogLevel  string `hcl:"log_level,optional" env:"LOG_LEVEL"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Style:     style.Square.String(),
		FillColor: "black",
		BackColor: "white",
		LogLevel:  "info",
	}
}

// Merge returns c with every non-empty field of o applied on top.
func (c Config) Merge(o Config) Config {
	if o.Style != "" {
		c.Style = o.Style
	}
	if o.FillColor != "" {
		c.FillColor = o.FillColor
	}
	if o.BackColor != "" {
		c.BackColor = o.BackColor
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return c
}

// Validate checks the fields that have a closed set of values. Colors are
// not checked here since resolution falls back to black.
func (c Config) Validate() error {
	if c.Style != "" {
		if _, ok := style.Lookup(c.Style); !ok {
			return fmt.Errorf("invalid style %q (want one of %v)", c.Style, style.Names())
		}
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadOptions selects the sources read by Load.
type LoadOptions struct {
	// File is an optional HCL config file.
	File string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
	// DotEnv lists dotenv files merged under the process environment when
	// Environ is nil. Missing files are skipped.
	DotEnv []string
}

// Load layers the defaults, opts.File and the environment, then validates
// the result.
func Load(opts LoadOptions) (Config, error) {
	environ := opts.Environ
	if environ == nil {
		var err error
		if environ, err = Environ(opts.DotEnv...); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()

	if opts.File != "" {
		fileCfg, err := LoadFile(opts.File, environ)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	envCfg, err := FromEnv(environ)
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Merge(envCfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
