package testutil

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/dot/pkg/filesystem"
)

// Op names a filesystem method for fault injection
type Op string

const (
	OpStat      Op = "Stat"
	OpLstat     Op = "Lstat"
	OpReadFile  Op = "ReadFile"
	OpWriteFile Op = "WriteFile"
	OpReadDir   Op = "ReadDir"
	OpSymlink   Op = "Symlink"
	OpReadlink  Op = "Readlink"
	OpRemove    Op = "Remove"
)

// FaultFS wraps a filesystem and fails selected calls.
// Faults are keyed by operation and path; an empty path matches any path.
type FaultFS struct {
	filesystem.FS
	faults map[Op]map[string]error
	calls  map[Op]int
}

// NewFaultFS wraps inner, or the OS filesystem when inner is nil
func NewFaultFS(inner filesystem.FS) *FaultFS {
	if inner == nil {
		inner = filesystem.NewOS()
	}
	return &FaultFS{
		FS:     inner,
		faults: map[Op]map[string]error{},
		calls:  map[Op]int{},
	}
}

// Fail makes op on path return err. A nil err injects fs.ErrPermission.
func (f *FaultFS) Fail(op Op, path string, err error) *FaultFS {
	if err == nil {
		err = fmt.Errorf("%s %s: %w", op, path, fs.ErrPermission)
	}
	if f.faults[op] == nil {
		f.faults[op] = map[string]error{}
	}
	f.faults[op][path] = err
	return f
}

// Calls returns how many times op was invoked
func (f *FaultFS) Calls(op Op) int {
	return f.calls[op]
}

func (f *FaultFS) check(op Op, path string) error {
	f.calls[op]++
	byPath := f.faults[op]
	if err, ok := byPath[path]; ok {
		return err
	}
	if err, ok := byPath[""]; ok {
		return err
	}
	return nil
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWriteFile, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}
