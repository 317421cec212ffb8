package config

import (
	"strings"

	"github.com/arthur-debert/dot/pkg/errors"
)

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Naming holds the file-name conventions that map profile entries to
// rendered artifacts and dotfiles.
type Naming struct {
	TemplateSuffix string `koanf:"template_suffix" toml:"template_suffix" yaml:"template_suffix"`
	RenderedSuffix string `koanf:"rendered_suffix" toml:"rendered_suffix" yaml:"rendered_suffix"`
	DotfilePrefix  string `koanf:"dotfile_prefix" toml:"dotfile_prefix" yaml:"dotfile_prefix"`
}

// Output holds console output settings
type Output struct {
	Color string `koanf:"color" toml:"color" yaml:"color"`
}

// Profile holds settings about profile directories themselves
type Profile struct {
	ConfigFiles []string `koanf:"config_files" toml:"config_files" yaml:"config_files"`
}

// Config is the main configuration structure
type Config struct {
	Home    string  `koanf:"home" toml:"home" yaml:"home"`
	Naming  Naming  `koanf:"naming" toml:"naming" yaml:"naming"`
	Output  Output  `koanf:"output" toml:"output" yaml:"output"`
	Profile Profile `koanf:"profile" toml:"profile" yaml:"profile"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		// Fallback to the literal defaults if the embedded file cannot be read
		return &Config{
			Home: "~",
			Naming: Naming{
				TemplateSuffix: ".template",
				RenderedSuffix: ".rendered",
				DotfilePrefix:  ".",
			},
			Output:  Output{Color: ColorAuto},
			Profile: Profile{ConfigFiles: []string{".dot.toml", ".dot.yaml"}},
		}
	}
	return cfg
}

// Validate checks invariants the reconciliation code relies on
func (c *Config) Validate() error {
	for key, suffix := range map[string]string{
		"naming.template_suffix": c.Naming.TemplateSuffix,
		"naming.rendered_suffix": c.Naming.RenderedSuffix,
	} {
		if len(suffix) < 2 || !strings.HasPrefix(suffix, ".") {
			return errors.Newf(errors.ErrConfigInvalid, "%s must start with '.' and name an extension, got %q", key, suffix).
				WithDetail("key", key)
		}
		if strings.ContainsRune(suffix, '/') {
			return errors.Newf(errors.ErrConfigInvalid, "%s must not contain '/', got %q", key, suffix).
				WithDetail("key", key)
		}
	}

	if c.Naming.TemplateSuffix == c.Naming.RenderedSuffix {
		return errors.Newf(errors.ErrConfigInvalid, "template and rendered suffixes must differ, both are %q", c.Naming.TemplateSuffix)
	}

	if strings.ContainsRune(c.Naming.DotfilePrefix, '/') {
		return errors.Newf(errors.ErrConfigInvalid, "naming.dotfile_prefix must not contain '/', got %q", c.Naming.DotfilePrefix)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "output.color must be one of auto, always, never, got %q", c.Output.Color)
	}

	if c.Home == "" {
		return errors.New(errors.ErrConfigInvalid, "home must not be empty")
	}

	return nil
}
