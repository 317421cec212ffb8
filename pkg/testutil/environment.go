package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnvironment is an isolated home directory plus a root for profiles,
// both under a symlink-free temp directory.
type TestEnvironment struct {
	Root string
	Home string

	t *testing.T
}

// NewTestEnvironment creates the directories and points HOME at the new home
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	env := &TestEnvironment{
		Root: root,
		Home: filepath.Join(root, "home"),
		t:    t,
	}
	require.NoError(t, os.MkdirAll(env.Home, 0755))
	t.Setenv("HOME", env.Home)

	return env
}

// Profile creates an empty profile directory and returns its path
func (e *TestEnvironment) Profile(name string) string {
	e.t.Helper()
	dir := filepath.Join(e.Root, name)
	require.NoError(e.t, os.MkdirAll(dir, 0755))
	return dir
}

// WriteFile writes content at path, creating parent directories
func (e *TestEnvironment) WriteFile(path, content string) string {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Symlink creates a symlink at link pointing to target
func (e *TestEnvironment) Symlink(target, link string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(e.t, os.Symlink(target, link))
}

// ReadFile returns the content of path
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(e.t, err)
	return string(data)
}

// AssertSymlink fails the test unless link is a symlink whose raw target is target
func (e *TestEnvironment) AssertSymlink(link, target string) {
	e.t.Helper()
	info, err := os.Lstat(link)
	require.NoError(e.t, err, "expected symlink at %s", link)
	require.True(e.t, info.Mode()&os.ModeSymlink != 0, "%s is not a symlink", link)
	got, err := os.Readlink(link)
	require.NoError(e.t, err)
	require.Equal(e.t, target, got, "symlink %s", link)
}

// AssertMissing fails the test if anything exists at path
func (e *TestEnvironment) AssertMissing(path string) {
	e.t.Helper()
	_, err := os.Lstat(path)
	require.True(e.t, os.IsNotExist(err), "expected %s to be absent", path)
}

// Snapshot records every path under root with its type and content so two
// filesystem states can be compared.
func (e *TestEnvironment) Snapshot(root string) map[string]string {
	e.t.Helper()
	snap := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snap[rel] = "link:" + target
		case info.IsDir():
			snap[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap[rel] = "file:" + string(data)
		}
		return nil
	})
	require.NoError(e.t, err)
	return snap
}
