package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "DOT_"

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ConfigFile is an explicit user config file. When empty the XDG
	// location is used if a file exists there.
	ConfigFile string

	// Overrides are applied last, keyed by dotted path ("naming.template_suffix").
	Overrides map[string]interface{}

	SkipUserConfig bool
	SkipEnv        bool
}

// Load merges all configuration layers and returns the validated result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if !opts.SkipUserConfig {
		configFile := opts.ConfigFile
		if configFile == "" {
			configFile = paths.UserConfigFile()
		} else if _, err := os.Stat(configFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", configFile).
				WithDetail("path", configFile)
		}

		if configFile != "" {
			if err := k.Load(file.Provider(configFile), parserFor(configFile)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("Loaded user config")
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("home", cfg.Home).
		Str("template_suffix", cfg.Naming.TemplateSuffix).
		Str("rendered_suffix", cfg.Naming.RenderedSuffix).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps DOT_NAMING__TEMPLATE_SUFFIX to naming.template_suffix
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
