package config

import (
	"github.com/arthur-debert/dot/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dump formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Dump serializes the configuration in the given format
func (c *Config) Dump(format string) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		out, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as TOML")
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config format %q (want toml or yaml)", format)
	}
}
