package vos

import (
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"github.com/sandshell/sandshell/core/vfs"
)

// ProcAttr describes a new virtual process.
type ProcAttr struct {
	// Args holds the command line, Args[0] is the command name.
	Args []string
	// Dir is the starting working directory, "/" when empty.
	Dir string
	// Env is the (shared) session environment; a fresh one is created when
	// nil.
	Env VEnv
	// FS is the filesystem capability; an empty memory FS when nil.
	FS vfs.VFS
	// Files holds the stdio streams; null IO when nil.
	Files VIO

	Hostname string
	ProxyURL string

	// Clock overrides time.Now, used for deterministic tests.
	Clock func() time.Time
	// HTTPClient used by network commands, nil disables them.
	HTTPClient *http.Client
}

// Proc is the concrete VOS handed to commands.
type Proc struct {
	VIO

	args     []string
	env      VEnv
	fs       vfs.VFS
	wd       string
	hostname string
	proxyURL string
	clock    func() time.Time
	client   *http.Client
}

var _ VOS = (*Proc)(nil)

// NewProc builds a process view from attr, filling defaults for any zero
// fields.
func NewProc(attr ProcAttr) *Proc {
	p := &Proc{
		VIO:      attr.Files,
		args:     attr.Args,
		env:      attr.Env,
		fs:       attr.FS,
		wd:       attr.Dir,
		hostname: attr.Hostname,
		proxyURL: attr.ProxyURL,
		clock:    attr.Clock,
		client:   attr.HTTPClient,
	}
	if p.VIO == nil {
		p.VIO = NewNullIO()
	}
	if p.env == nil {
		p.env = NewMapEnv()
	}
	if p.fs == nil {
		p.fs = vfs.NewMemFs()
	}
	if p.wd == "" {
		p.wd = "/"
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	return p
}

func (p *Proc) Args() []string {
	return p.args
}

func (p *Proc) Getenv(key string) string { return p.env.Getenv(key) }
func (p *Proc) Setenv(key, value string) { p.env.Setenv(key, value) }
func (p *Proc) Environ() []string        { return p.env.Environ() }

func (p *Proc) Hostname() string {
	return p.hostname
}

func (p *Proc) Now() time.Time {
	return p.clock()
}

func (p *Proc) HTTPClient() *http.Client {
	return p.client
}

func (p *Proc) ProxyURL() string {
	return p.proxyURL
}

func (p *Proc) Getwd() string {
	return p.wd
}

// Chdir validates dir then updates the working directory and $PWD.
func (p *Proc) Chdir(dir string) error {
	resolved := p.resolve(dir)
	info, err := p.fs.Stat(resolved)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	p.wd = resolved
	p.env.Setenv("PWD", resolved)
	return nil
}

// resolve maps a command-supplied path onto the filesystem root relative to
// the working directory.
func (p *Proc) resolve(name string) string {
	return vfs.Resolve(p.wd, name)
}

// The afero.Fs surface, all paths resolved against the working directory.

func (p *Proc) Name() string { return "vos" }

func (p *Proc) Create(name string) (afero.File, error) {
	return p.fs.Create(p.resolve(name))
}

func (p *Proc) Open(name string) (afero.File, error) {
	return p.fs.Open(p.resolve(name))
}

func (p *Proc) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return p.fs.OpenFile(p.resolve(name), flag, perm)
}

func (p *Proc) Mkdir(name string, perm os.FileMode) error {
	return p.fs.Mkdir(p.resolve(name), perm)
}

func (p *Proc) MkdirAll(name string, perm os.FileMode) error {
	return p.fs.MkdirAll(p.resolve(name), perm)
}

func (p *Proc) Remove(name string) error {
	return p.fs.Remove(p.resolve(name))
}

func (p *Proc) RemoveAll(name string) error {
	return p.fs.RemoveAll(p.resolve(name))
}

func (p *Proc) Rename(oldname, newname string) error {
	return p.fs.Rename(p.resolve(oldname), p.resolve(newname))
}

func (p *Proc) Stat(name string) (os.FileInfo, error) {
	return p.fs.Stat(p.resolve(name))
}

func (p *Proc) Chmod(name string, mode os.FileMode) error {
	return p.fs.Chmod(p.resolve(name), mode)
}

func (p *Proc) Chown(name string, uid, gid int) error {
	return p.fs.Chown(p.resolve(name), uid, gid)
}

func (p *Proc) Chtimes(name string, atime, mtime time.Time) error {
	return p.fs.Chtimes(p.resolve(name), atime, mtime)
}

func (p *Proc) Readlink(name string) (string, error) {
	return vfs.Readlink(p.fs, p.resolve(name))
}

func (p *Proc) Symlink(oldname, newname string) error {
	return vfs.Symlink(p.fs, oldname, p.resolve(newname))
}
