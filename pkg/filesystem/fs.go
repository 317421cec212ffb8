package filesystem

import (
	"errors"
	"io/fs"
	"syscall"
)

// FS is the filesystem interface required by dot operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	Remove(name string) error
}

// Exists reports whether name exists without following a final symlink.
// Errors other than not-exist are returned to the caller.
func Exists(fsys FS, name string) (bool, error) {
	_, err := fsys.Lstat(name)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether name is a directory, following symlinks.
// A path that cannot name anything (missing, under a non-directory, or a
// symlink loop) is not a directory; other errors are returned.
func IsDir(fsys FS, name string) (bool, error) {
	info, err := fsys.Stat(name)
	if err == nil {
		return info.IsDir(), nil
	}
	if IsUnreachable(err) {
		return false, nil
	}
	return false, err
}

// IsUnreachable reports whether err means the path does not resolve to a file
func IsUnreachable(err error) bool {
	return isNotExist(err) || errors.Is(err, syscall.ENOTDIR) || errors.Is(err, syscall.ELOOP)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
