// Package config handles configuration management for dot.
//
// Configuration is layered with koanf, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file: --config, else $XDG_CONFIG_HOME/dot/config.toml
//     or config.yaml
//  3. DOT_* environment variables, "__" separating nested keys
//     (DOT_NAMING__TEMPLATE_SUFFIX sets naming.template_suffix)
//  4. overrides supplied by the command line
//
// The merged tree is decoded into Config and validated before use.
package config
