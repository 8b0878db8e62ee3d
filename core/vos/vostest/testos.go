// Package vostest provides a deterministic harness for running commands in
// tests, modeled on os/exec.Cmd.
package vostest

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/sandshell/sandshell/core/vfs"
	"github.com/sandshell/sandshell/core/vos"
)

// Clock is the fixed timestamp every test process observes: Go's reference
// time with a different value in each position.
func Clock() time.Time {
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

// Cmd runs a single command function against a fresh in-memory filesystem.
type Cmd struct {
	// Process is the command under test.
	Process vos.ProcessFunc
	// Argv holds the process arguments, the first is the process name.
	Argv []string
	// Dir is the working directory, "/" when empty.
	Dir string
	// Stdin is the piped input, empty by default.
	Stdin string
	// FS is shared across Run calls so tests can seed and inspect files.
	FS vfs.VFS
	// Env is shared across Run calls.
	Env *vos.MapEnv

	// ExitStatus of the last Run.
	ExitStatus int

	// Setup runs against the process before the command, for seeding state
	// through the VOS surface.
	Setup func(vos.VOS) error
}

func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		FS:      vfs.NewMemFs(),
		Env:     vos.NewMapEnv(),
	}
}

// CombinedOutput runs the command and returns stdout and stderr together.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := c.run(buf, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the command and returns stdout and stderr separately.
func (c *Cmd) Output() (stdout, stderr []byte, err error) {
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	if err := c.run(outBuf, errBuf); err != nil {
		return nil, nil, err
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}

// Run starts the command and waits for it to complete, discarding output.
func (c *Cmd) Run() error {
	return c.run(io.Discard, io.Discard)
}

func (c *Cmd) run(stdout, stderr io.Writer) error {
	proc := vos.NewProc(vos.ProcAttr{
		Args:     c.Argv,
		Dir:      c.Dir,
		Env:      c.Env,
		FS:       c.FS,
		Files:    vos.NewVIOAdapter(strings.NewReader(c.Stdin), stdout, stderr),
		Hostname: "testhost",
		Clock:    Clock,
	})

	if c.Setup != nil {
		if err := c.Setup(proc); err != nil {
			return err
		}
	}

	c.ExitStatus = c.Process(proc)
	return nil
}
