// Package config resolves herx settings from flags, environment and config files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jmylchreest/herx/internal/colour"
	"github.com/jmylchreest/herx/internal/herx"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. HERX_FREQUENCY.
const EnvPrefix = "HERX"

// Setting keys. Each key is also the name of the flag it binds to.
const (
	KeyFrequency = "frequency"
	KeyColour1   = "colour1"
	KeyColour2   = "colour2"
	KeyBase      = "base"
	KeyFormat    = "format"
	KeyPreview   = "preview"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Config holds the resolved settings for a single evaluation.
type Config struct {
	Frequency float64
	Colour1   string
	Colour2   string
	Base      string
	Format    string
	Preview   string

	// File is the config file that was read, empty if none.
	File string
}

// Input returns the formula input described by the config.
func (c *Config) Input() herx.Input {
	return herx.Input{
		Frequency: c.Frequency,
		Colour1:   c.Colour1,
		Colour2:   c.Colour2,
		Base:      c.Base,
	}
}

// Validate checks the output settings and the colour formats.
// The frequency is left to the formula, which reports herx.ErrDomain.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats(), c.Format) {
		return fmt.Errorf("invalid format %q (valid: %v)", c.Format, ValidFormats())
	}
	if !slices.Contains(ValidPreviewModes(), c.Preview) {
		return fmt.Errorf("invalid preview mode %q (valid: %v)", c.Preview, ValidPreviewModes())
	}

	for _, field := range []struct {
		key   string
		value string
	}{
		{KeyColour1, c.Colour1},
		{KeyColour2, c.Colour2},
		{KeyBase, c.Base},
	} {
		if _, err := colour.ParseHex(field.value); err != nil {
			return fmt.Errorf("%s: %w", field.key, err)
		}
	}

	return nil
}

// ValidFormats returns the supported output formats.
func ValidFormats() []string {
	return []string{FormatText, FormatJSON, FormatTable}
}

// ValidPreviewModes returns the supported preview modes.
func ValidPreviewModes() []string {
	return []string{PreviewAuto, PreviewAlways, PreviewNever}
}

// SetDefaults registers the reference values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFrequency, herx.DefaultFrequency)
	v.SetDefault(KeyColour1, herx.DefaultColour1)
	v.SetDefault(KeyColour2, herx.DefaultColour2)
	v.SetDefault(KeyBase, herx.DefaultBase)
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyPreview, PreviewAuto)
}

// Load resolves a Config with precedence flag > environment > config file > default.
// Flags in fs whose names match a setting key are bound; others are ignored.
// If configFile is empty, herx.yaml (or .toml/.json) is searched for in the
// working directory and the user config directory; a missing file is not an error.
func Load(fs *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, key := range []string{KeyFrequency, KeyColour1, KeyColour2, KeyBase, KeyFormat, KeyPreview} {
		if fs == nil {
			break
		}
		if f := fs.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("herx")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "herx"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	frequency, err := cast.ToFloat64E(v.Get(KeyFrequency))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %v: %w", KeyFrequency, v.Get(KeyFrequency), err)
	}

	return &Config{
		Frequency: frequency,
		Colour1:   v.GetString(KeyColour1),
		Colour2:   v.GetString(KeyColour2),
		Base:      v.GetString(KeyBase),
		Format:    v.GetString(KeyFormat),
		Preview:   v.GetString(KeyPreview),
		File:      v.ConfigFileUsed(),
	}, nil
}
