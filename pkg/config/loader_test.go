package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config dir at an empty temp dir so a developer's
// real config never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "~", cfg.Home)
	assert.Equal(t, ".template", cfg.Naming.TemplateSuffix)
	assert.Equal(t, ".rendered", cfg.Naming.RenderedSuffix)
	assert.Equal(t, ".", cfg.Naming.DotfilePrefix)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, []string{".dot.toml", ".dot.yaml"}, cfg.Profile.ConfigFiles)
}

func TestLoad_Layering(t *testing.T) {
	xdgDir := isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Join(xdgDir, "dot"), 0755))
	userConfig := `
home = "/srv/home"

[naming]
template_suffix = ".tmpl"
rendered_suffix = ".out"
`
	require.NoError(t, os.WriteFile(filepath.Join(xdgDir, "dot", "config.toml"), []byte(userConfig), 0644))

	t.Run("user file overrides defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, "/srv/home", cfg.Home)
		assert.Equal(t, ".tmpl", cfg.Naming.TemplateSuffix)
		assert.Equal(t, ".out", cfg.Naming.RenderedSuffix)
		assert.Equal(t, ".", cfg.Naming.DotfilePrefix)
	})

	t.Run("env overrides user file", func(t *testing.T) {
		t.Setenv("DOT_NAMING__RENDERED_SUFFIX", ".built")
		t.Setenv("DOT_OUTPUT__COLOR", "never")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, ".tmpl", cfg.Naming.TemplateSuffix)
		assert.Equal(t, ".built", cfg.Naming.RenderedSuffix)
		assert.Equal(t, ColorNever, cfg.Output.Color)
	})

	t.Run("overrides win over env", func(t *testing.T) {
		t.Setenv("DOT_HOME", "/from/env")

		cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{"home": "/from/flag"}})
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", cfg.Home)
	})

	t.Run("env lists are comma separated", func(t *testing.T) {
		t.Setenv("DOT_PROFILE__CONFIG_FILES", ".a.toml,.b.yaml")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{".a.toml", ".b.yaml"}, cfg.Profile.ConfigFiles)
	})
}

func TestLoad_ExplicitYAMLFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "dot.yaml")
	content := "naming:\n  dotfile_prefix: \"_\"\noutput:\n  color: always\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "_", cfg.Naming.DotfilePrefix)
	assert.Equal(t, ColorAlways, cfg.Output.Color)
	assert.Equal(t, ".template", cfg.Naming.TemplateSuffix)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "nope.toml"), SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[naming\n"), 0644))

		_, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(LoadOptions{
			SkipEnv:   true,
			Overrides: map[string]interface{}{"naming.rendered_suffix": ".template"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty prefix is allowed", func(c *Config) { c.Naming.DotfilePrefix = "" }, false},
		{"suffix without dot", func(c *Config) { c.Naming.TemplateSuffix = "template" }, true},
		{"bare dot suffix", func(c *Config) { c.Naming.RenderedSuffix = "." }, true},
		{"suffix with slash", func(c *Config) { c.Naming.RenderedSuffix = ".a/b" }, true},
		{"prefix with slash", func(c *Config) { c.Naming.DotfilePrefix = "x/" }, true},
		{"unknown color", func(c *Config) { c.Output.Color = "sometimes" }, true},
		{"empty home", func(c *Config) { c.Home = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDump(t *testing.T) {
	cfg := Default()

	out, err := cfg.Dump(FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[naming]")
	assert.Contains(t, string(out), "template_suffix = ")
	assert.Contains(t, string(out), ".template")

	out, err = cfg.Dump(FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "naming:")
	assert.Contains(t, string(out), "template_suffix: ")

	_, err = cfg.Dump("xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
