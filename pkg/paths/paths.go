package paths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dot/pkg/errors"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "dot"

	// LogFileName is the name of the diagnostic log file
	LogFileName = "dot.log"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// maxLinkDepth bounds symlink resolution of partially missing paths
	maxLinkDepth = 40
)

// ConfigFileNames lists the user config files looked up in ConfigDir, in order.
var ConfigFileNames = []string{"config.toml", "config.yaml"}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot expand ~")
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}

// LinkReader is the part of a filesystem needed to resolve symlinks
type LinkReader interface {
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
}

type osLinks struct{}

func (osLinks) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }
func (osLinks) Readlink(name string) (string, error)   { return os.Readlink(name) }

// Canonicalize returns the absolute path with "~" expanded and symlinks
// resolved for every component that exists.
func Canonicalize(path string) (string, error) {
	return CanonicalizeWith(osLinks{}, path)
}

// CanonicalizeWith is Canonicalize reading symlinks through links
func CanonicalizeWith(links LinkReader, path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot make %s absolute", path)
	}

	return resolve(links, abs, 0), nil
}

// ResolveLinkTarget canonicalizes the raw target of the symlink at linkPath.
// Relative targets are interpreted against the link's directory.
func ResolveLinkTarget(linkPath, target string) (string, error) {
	return ResolveLinkTargetWith(osLinks{}, linkPath, target)
}

// ResolveLinkTargetWith is ResolveLinkTarget reading symlinks through links
func ResolveLinkTargetWith(links LinkReader, linkPath, target string) (string, error) {
	expanded, err := ExpandHome(target)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(filepath.Dir(linkPath), expanded)
	}
	return CanonicalizeWith(links, expanded)
}

// resolve walks path one component at a time, replacing each symlink by its
// target. Dangling links are followed too; missing components are kept as is.
func resolve(links LinkReader, path string, depth int) string {
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}

	candidate := filepath.Join(resolve(links, parent, depth), filepath.Base(path))

	info, err := links.Lstat(candidate)
	if err != nil || info.Mode()&os.ModeSymlink == 0 || depth >= maxLinkDepth {
		return candidate
	}
	target, err := links.Readlink(candidate)
	if err != nil {
		return candidate
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(candidate), target)
	}
	return resolve(links, filepath.Clean(target), depth+1)
}

// ConfigDir returns the XDG config directory for dot
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the XDG state directory for dot
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the diagnostic log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// UserConfigFile returns the first existing user config file, or "" when
// none exists.
func UserConfigFile() string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(ConfigDir(), name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
