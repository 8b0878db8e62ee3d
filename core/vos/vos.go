// Package vos provides the virtual OS surface a command executes against:
// argv, environment, working directory, stdio, a filesystem, and a clock.
// Every command invocation gets its own process view; the filesystem and
// environment are shared with the owning session.
package vos

import (
	"io"
	"net/http"
	"time"

	"github.com/spf13/afero"
)

// ProcessFunc is the entry point of a command. It reads and writes through
// the virtual OS and returns its exit code.
type ProcessFunc func(virtOS VOS) int

// VIO provides the process's standard streams.
type VIO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// VEnv provides access to environment variables.
type VEnv interface {
	Getenv(key string) string
	Setenv(key, value string)
	Environ() []string
}

// VOS is the virtual OS a process sees. The embedded afero.Fs operates
// relative to the process working directory.
type VOS interface {
	VIO
	VEnv
	afero.Fs

	// Args holds the command line, Args[0] is the command name.
	Args() []string

	Getwd() string
	Chdir(dir string) error

	// Readlink returns the recorded target of a symlink verbatim.
	Readlink(name string) (string, error)
	Symlink(oldname, newname string) error

	Hostname() string
	Now() time.Time

	// HTTPClient returns the client network commands must use, nil when
	// networking is disabled.
	HTTPClient() *http.Client
	// ProxyURL is the base URL network fetches are routed through.
	ProxyURL() string
}
