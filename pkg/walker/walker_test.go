package walker

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/operations"
	"github.com/arthur-debert/dot/pkg/report"
	"github.com/arthur-debert/dot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalker(fsys filesystem.FS) *Walker {
	lookup := func(name string) (string, bool) {
		if name == "FOO" {
			return "bar", true
		}
		return "", false
	}
	return New(fsys, config.Default(), lookup)
}

func TestWalk_SkipsHiddenRenderedAndIgnored(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	p := env.Profile("p")
	env.WriteFile(filepath.Join(p, "a"), "a")
	env.WriteFile(filepath.Join(p, "b.template"), "b=$FOO")
	env.WriteFile(filepath.Join(p, ".c"), "c")
	env.WriteFile(filepath.Join(p, "stale.rendered"), "old")
	env.WriteFile(filepath.Join(p, "README.md"), "docs")
	env.WriteFile(filepath.Join(p, ".dot.toml"), `ignore = ["*.md"]`)
	require.NoError(t, os.MkdirAll(filepath.Join(p, "dir.rendered"), 0755))

	rep := report.Discard()
	err := newWalker(filesystem.NewOS()).Walk(Options{
		Operation: operations.Link,
		Home:      env.Home,
		Profiles:  []string{p},
		Reporter:  rep,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.WarningCount())

	env.AssertSymlink(filepath.Join(env.Home, ".a"), filepath.Join(p, "a"))
	env.AssertSymlink(filepath.Join(env.Home, ".b"), filepath.Join(p, "b.rendered"))
	assert.Equal(t, "b=bar", env.ReadFile(filepath.Join(p, "b.rendered")))
	env.AssertMissing(filepath.Join(env.Home, ".c"))
	env.AssertMissing(filepath.Join(env.Home, ".stale.rendered"))
	env.AssertMissing(filepath.Join(env.Home, ".README.md"))
	env.AssertMissing(filepath.Join(env.Home, "..dot.toml"))
	// Directories ending in the rendered suffix are still entries
	env.AssertSymlink(filepath.Join(env.Home, ".dir.rendered"), filepath.Join(p, "dir.rendered"))
}

func TestWalk_OrderIsDeterministic(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	p1 := env.Profile("p1")
	p2 := env.Profile("p2")
	env.WriteFile(filepath.Join(p1, "zshrc"), "")
	env.WriteFile(filepath.Join(p1, "bashrc"), "")
	env.WriteFile(filepath.Join(p2, "vimrc"), "")

	var buf bytes.Buffer
	rep := report.New(&buf, report.Options{Verbosity: 1})
	err := newWalker(filesystem.NewOS()).Walk(Options{
		Operation: operations.Link,
		Home:      env.Home,
		Profiles:  []string{p2, p1},
		DryRun:    true,
		Reporter:  rep,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"File "+filepath.Join(env.Home, ".vimrc")+" created and linked to "+filepath.Join(p2, "vimrc")+"\n"+
			"File "+filepath.Join(env.Home, ".bashrc")+" created and linked to "+filepath.Join(p1, "bashrc")+"\n"+
			"File "+filepath.Join(env.Home, ".zshrc")+" created and linked to "+filepath.Join(p1, "zshrc")+"\n",
		buf.String())
	env.AssertMissing(filepath.Join(env.Home, ".vimrc"))
}

func TestWalk_MissingProfileIsAdvisory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	p := env.Profile("p")
	env.WriteFile(filepath.Join(p, "vimrc"), "")
	missing := filepath.Join(env.Root, "nope")

	var buf bytes.Buffer
	rep := report.New(&buf, report.Options{})
	err := newWalker(filesystem.NewOS()).Walk(Options{
		Operation: operations.Link,
		Home:      env.Home,
		Profiles:  []string{missing, p},
		Reporter:  rep,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, rep.WarningCount())
	assert.Equal(t, "Profile "+missing+" does not exist\n", buf.String())
	env.AssertSymlink(filepath.Join(env.Home, ".vimrc"), filepath.Join(p, "vimrc"))
}

func TestWalk_MissingHomeIsCounted(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	p := env.Profile("p")
	env.WriteFile(filepath.Join(p, "vimrc"), "")
	home := filepath.Join(env.Root, "no-home")

	var buf bytes.Buffer
	rep := report.New(&buf, report.Options{})
	err := newWalker(filesystem.NewOS()).Walk(Options{
		Operation: operations.Link,
		Home:      home,
		Profiles:  []string{p},
		Reporter:  rep,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.WarningCount())
	assert.Equal(t, "Folder "+home+" does not exist\n", buf.String())
	env.AssertMissing(filepath.Join(home, ".vimrc"))
}

func TestWalk_ProfileThroughSymlinkAndTilde(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	p := env.Profile("dotfiles/base")
	env.WriteFile(filepath.Join(p, "vimrc"), "")
	env.Symlink(filepath.Join(env.Root, "dotfiles"), filepath.Join(env.Home, "df"))

	rep := report.Discard()
	err := newWalker(filesystem.NewOS()).Walk(Options{
		Operation: operations.Link,
		Home:      "~",
		Profiles:  []string{"~/df/base"},
		Reporter:  rep,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.WarningCount())
	env.AssertSymlink(filepath.Join(env.Home, ".vimrc"), filepath.Join(p, "vimrc"))
}

func TestWalk_Unlink(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	p := env.Profile("p")
	env.WriteFile(filepath.Join(p, "vimrc"), "")
	env.WriteFile(filepath.Join(p, "notes.md"), "")
	env.WriteFile(filepath.Join(p, ".dot.yaml"), "ignore: ['*.md']\n")
	env.Symlink(filepath.Join(p, "vimrc"), filepath.Join(env.Home, ".vimrc"))

	rep := report.Discard()
	err := newWalker(filesystem.NewOS()).Walk(Options{
		Operation: operations.Unlink,
		Home:      env.Home,
		Profiles:  []string{p},
		Reporter:  rep,
	})
	require.NoError(t, err)
	// notes.md is ignored, so its missing dotfile is not reported
	assert.Equal(t, 0, rep.WarningCount())
	env.AssertMissing(filepath.Join(env.Home, ".vimrc"))
}

func TestWalk_Errors(t *testing.T) {
	t.Run("bad profile settings", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		p := env.Profile("p")
		env.WriteFile(filepath.Join(p, ".dot.toml"), "ignore = [")

		err := newWalker(filesystem.NewOS()).Walk(Options{
			Operation: operations.Link,
			Home:      env.Home,
			Profiles:  []string{p},
			Reporter:  report.Discard(),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrProfileConfig))
	})

	t.Run("unreadable profile", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		p := env.Profile("p")

		ffs := testutil.NewFaultFS(nil).Fail(testutil.OpReadDir, p, nil)
		err := newWalker(ffs).Walk(Options{
			Operation: operations.Link,
			Home:      env.Home,
			Profiles:  []string{p},
			Reporter:  report.Discard(),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	})
	t.Run("unreadable home", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		p := env.Profile("p")
		env.WriteFile(filepath.Join(p, "vimrc"), "")

		rep := report.Discard()
		ffs := testutil.NewFaultFS(nil).Fail(testutil.OpStat, env.Home, nil)
		err := newWalker(ffs).Walk(Options{
			Operation: operations.Link,
			Home:      env.Home,
			Profiles:  []string{p},
			Reporter:  rep,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
		assert.Equal(t, 0, rep.WarningCount())
		env.AssertMissing(filepath.Join(env.Home, ".vimrc"))
	})

	t.Run("unreadable profile root", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		p := env.Profile("p")

		rep := report.Discard()
		ffs := testutil.NewFaultFS(nil).Fail(testutil.OpStat, p, nil)
		err := newWalker(ffs).Walk(Options{
			Operation: operations.Link,
			Home:      env.Home,
			Profiles:  []string{p},
			Reporter:  rep,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
		assert.Equal(t, 0, rep.WarningCount())
	})

	t.Run("unreadable entry", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		p := env.Profile("p")
		env.WriteFile(filepath.Join(p, "nvim", "init.vim.template"), "x")
		entry := filepath.Join(p, "nvim")

		rep := report.Discard()
		ffs := testutil.NewFaultFS(nil).Fail(testutil.OpStat, entry, nil)
		err := newWalker(ffs).Walk(Options{
			Operation: operations.Link,
			Home:      env.Home,
			Profiles:  []string{p},
			Reporter:  rep,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
		assert.Equal(t, entry, errors.GetErrorDetails(err)["path"])
		env.AssertMissing(filepath.Join(env.Home, ".nvim"))
	})
}
