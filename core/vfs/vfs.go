// Package vfs holds the filesystem capability every command runs against.
//
// The interpreter never touches a real disk; commands see an afero.Fs and
// the host decides what backs it. The default backend is an in-memory
// filesystem with symlink support backfilled on top.
package vfs

import (
	"os"
	"path"

	"github.com/spf13/afero"
)

// VFS is the filesystem capability consumed by commands and the executor.
type VFS = afero.Fs

// NewMemFs returns an empty in-memory filesystem with symlink emulation.
func NewMemFs() VFS {
	return NewLinkingFs(afero.NewMemMapFs())
}

// Resolve joins name onto the working directory unless name is absolute.
// The result is always cleaned.
func Resolve(wd, name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(wd, name)
}

// ReadFile reads the named file in full.
func ReadFile(fsys VFS, name string) ([]byte, error) {
	return afero.ReadFile(fsys, name)
}

// WriteFile writes data to the named file, creating it if necessary. The
// parent directory must already exist.
func WriteFile(fsys VFS, name string, data []byte) error {
	if err := requireParent(fsys, name); err != nil {
		return err
	}
	return afero.WriteFile(fsys, name, data, 0644)
}

// AppendFile appends data to the named file, creating it if necessary. The
// parent directory must already exist.
func AppendFile(fsys VFS, name string, data []byte) error {
	if err := requireParent(fsys, name); err != nil {
		return err
	}
	fd, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer fd.Close()
	_, err = fd.Write(data)
	return err
}

// requireParent fails if the parent directory of name doesn't exist.
// Redirection and file creation deliberately don't MkdirAll.
func requireParent(fsys VFS, name string) error {
	parent := path.Dir(name)
	if parent == "." || parent == "/" {
		return nil
	}
	info, err := fsys.Stat(parent)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "open", Path: name, Err: os.ErrInvalid}
	}
	return nil
}

// Exists reports whether name exists.
func Exists(fsys VFS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
