// Package profile reads the optional settings file at the root of a profile
// directory (.dot.toml or .dot.yaml):
//
//	ignore = ["README*", "*.md"]
//
// Ignore patterns use filepath.Match syntax and are matched against the
// names of the profile's direct children.
package profile

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings is the per-profile configuration
type Settings struct {
	Ignore []string `toml:"ignore" yaml:"ignore"`

	// Source is the file the settings were read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// Load reads the first settings file from fileNames found in dir. A profile
// without one gets empty settings.
func Load(fsys filesystem.FS, dir string, fileNames []string) (*Settings, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		exists, err := filesystem.Exists(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrProfileConfig, "cannot inspect profile settings %s", path).
				WithDetail("path", path)
		}
		if !exists {
			continue
		}

		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrProfileConfig, "cannot read profile settings %s", path).
				WithDetail("path", path)
		}
		return parse(path, data)
	}
	return &Settings{}, nil
}

func parse(path string, data []byte) (*Settings, error) {
	logger := logging.GetLogger("profile").With().Str("configPath", path).Logger()

	var settings Settings
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &settings)
	default:
		err = toml.Unmarshal(data, &settings)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProfileConfig, "cannot parse profile settings %s", path).
			WithDetail("path", path)
	}

	for _, pattern := range settings.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, errors.Wrapf(err, errors.ErrProfileConfig, "invalid ignore pattern %q in %s", pattern, path).
				WithDetail("path", path).
				WithDetail("pattern", pattern)
		}
	}
	settings.Source = path

	logger.Debug().
		Int("ignore_rules", len(settings.Ignore)).
		Msg("Profile settings loaded")

	return &settings, nil
}

// Ignored returns the first ignore pattern matching name, or "" when none does
func (s *Settings) Ignored(name string) string {
	for _, pattern := range s.Ignore {
		if ok, _ := filepath.Match(pattern, name); ok {
			return pattern
		}
	}
	return ""
}
