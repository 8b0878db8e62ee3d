package vfs

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// ErrNotLink is returned by Readlink when the target isn't a symlink.
var ErrNotLink = errors.New("not a link")

// linkingFs backfills POSIX-style symlink support onto backends without it.
// A link is stored as a regular file whose contents are the target string
// and whose mode carries os.ModeSymlink. Readlink returns the originally
// given target verbatim; no resolution is attempted.
type linkingFs struct {
	VFS
}

// NewLinkingFs wraps base with symlink emulation.
func NewLinkingFs(base VFS) VFS {
	return &linkingFs{base}
}

var _ afero.Symlinker = (*linkingFs)(nil)

func (lfs *linkingFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	fi, err := lfs.VFS.Stat(name)
	return fi, true, err
}

func (lfs *linkingFs) ReadlinkIfPossible(name string) (string, error) {
	fi, _, err := lfs.LstatIfPossible(name)
	if err != nil {
		return "", err
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return "", ErrNotLink
	}

	contents, err := afero.ReadFile(lfs.VFS, name)
	return string(contents), err
}

func (lfs *linkingFs) SymlinkIfPossible(oldname, newname string) error {
	return afero.WriteFile(lfs.VFS, newname, []byte(oldname), 0666|os.ModeSymlink)
}

// Readlink returns the stored target of a symlink on any VFS that supports
// link reading.
func Readlink(fsys VFS, name string) (string, error) {
	if reader, ok := fsys.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", ErrNotLink
}

// Symlink records a symlink pointing at oldname.
func Symlink(fsys VFS, oldname, newname string) error {
	if linker, ok := fsys.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}
	return afero.ErrNoSymlink
}
