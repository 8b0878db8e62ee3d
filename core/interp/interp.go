// Package interp executes compound command lines against a command
// registry: it splits a raw line into segments, applies the &&/||/;/|
// control-flow policy, threads pipe data between segments, performs output
// redirection, and formats the combined result as a single string.
package interp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sandshell/sandshell/core/config"
	"github.com/sandshell/sandshell/core/vfs"
	"github.com/sandshell/sandshell/core/vos"
)

// Registry resolves command names to their implementations.
type Registry interface {
	// Lookup returns the process for name.
	Lookup(name string) (vos.ProcessFunc, bool)
	// Names returns the sorted names listed to the user, hidden commands
	// excluded.
	Names() []string
}

// Result is the outcome of one segment.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// NewDir is set when the segment changed the working directory.
	NewDir string
}

// Options configures a new session. Zero fields get working defaults.
type Options struct {
	Registry Registry
	FS       vfs.VFS
	Config   *config.Config
	// Dir is the starting working directory, "/" when empty.
	Dir string
	// Logger records executed segments at debug level.
	Logger *log.Logger
	// Clock overrides time.Now for commands like date.
	Clock func() time.Time
	// HTTPClient overrides the one derived from Config.
	HTTPClient *http.Client
}

// Session is a single interpreter session. The working directory is the
// only state that persists across Execute calls; everything else is
// recomputed per segment. Sessions are not safe for concurrent use.
type Session struct {
	registry Registry
	fs       vfs.VFS
	cfg      *config.Config
	env      *vos.MapEnv
	wd       string
	logger   *log.Logger
	clock    func() time.Time
	client   *http.Client

	lastExit int
}

// NewSession builds a session and seeds its environment.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = vfs.NewMemFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	client := opts.HTTPClient
	if client == nil && cfg.ProxyURL != "" {
		client = &http.Client{Timeout: cfg.HTTPTimeout()}
	}
	wd := opts.Dir
	if wd == "" {
		wd = "/"
	}

	home := path.Join("/home", cfg.Username)
	_ = fsys.MkdirAll(home, 0755)

	env := vos.NewMapEnv()
	env.Setenv("USER", cfg.Username)
	env.Setenv("HOME", home)
	env.Setenv("HOSTNAME", cfg.Hostname)
	env.Setenv("PATH", "/usr/local/bin:/usr/bin:/bin")
	env.Setenv("SHELL", "/bin/sh")
	env.Setenv("PWD", wd)
	env.Setenv("TERM", "xterm-256color")

	return &Session{
		registry: opts.Registry,
		fs:       fsys,
		cfg:      cfg,
		env:      env,
		wd:       wd,
		logger:   logger,
		clock:    clock,
		client:   client,
	}
}

// Dir returns the current working directory.
func (s *Session) Dir() string {
	return s.wd
}

// Env returns the session environment.
func (s *Session) Env() *vos.MapEnv {
	return s.env
}

// FS returns the session filesystem.
func (s *Session) FS() vfs.VFS {
	return s.fs
}

// Execute runs one compound command line and returns the formatted output.
//
// Segments run strictly left to right: && skips the next segment after a
// failure, || after a success, ; never skips, and | feeds the previous
// segment's stdout into the next one without showing it. A segment that
// changes the working directory affects all later segments of the line.
func (s *Session) Execute(raw string) string {
	segments := SplitCompound(raw)

	var (
		visible   []string
		pipeInput string
		prevOp    = OpNone
	)

	for _, segment := range segments {
		switch prevOp {
		case OpAnd:
			if s.lastExit != 0 {
				prevOp = segment.Op
				continue
			}
		case OpOr:
			if s.lastExit == 0 {
				prevOp = segment.Op
				continue
			}
		}

		stdin := ""
		if prevOp == OpPipe {
			stdin = pipeInput
		}
		pipeInput = ""

		commandText, redirect := ExtractRedirect(segment.Text)
		args := Tokenize(commandText)
		if len(args) == 0 {
			prevOp = segment.Op
			continue
		}

		result := s.runSegment(args, stdin)
		s.lastExit = result.ExitCode
		if result.NewDir != "" {
			s.wd = result.NewDir
		}
		s.logger.Debug("executed segment",
			"command", args[0], "exit", result.ExitCode, "wd", s.wd)

		switch {
		case segment.Op == OpPipe:
			// Pipes are transparent: stash stdout for the next segment.
			pipeInput = result.Stdout
			if msg := formatResult("", result.Stderr, 0); msg != "" {
				visible = append(visible, msg)
			}

		case redirect != nil:
			if err := s.writeRedirect(redirect, result.Stdout); err != nil {
				visible = append(visible, fmt.Sprintf("Redirection error: %v", err))
				s.lastExit = 1
				prevOp = segment.Op
				continue
			}
			if msg := formatResult("", result.Stderr, result.ExitCode); msg != "" {
				visible = append(visible, msg)
			}

		default:
			if msg := formatResult(result.Stdout, result.Stderr, result.ExitCode); msg != "" {
				visible = append(visible, msg)
			}
		}

		prevOp = segment.Op
	}

	if len(visible) == 0 {
		return "(no output)"
	}
	return strings.Join(visible, "\n")
}

// runSegment dispatches one parsed invocation through the registry.
func (s *Session) runSegment(args []string, stdin string) Result {
	name := args[0]

	process, ok := s.registry.Lookup(name)
	if !ok {
		return Result{
			Stderr: fmt.Sprintf("sh: command not found: %s\nAvailable commands: %s",
				name, strings.Join(s.registry.Names(), ", ")),
			ExitCode: 127,
		}
	}

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	proc := vos.NewProc(vos.ProcAttr{
		Args:       args,
		Dir:        s.wd,
		Env:        s.env,
		FS:         s.fs,
		Files:      vos.NewVIOAdapter(strings.NewReader(stdin), outBuf, errBuf),
		Hostname:   s.cfg.Hostname,
		ProxyURL:   s.cfg.ProxyURL,
		Clock:      s.clock,
		HTTPClient: s.client,
	})

	exitCode := process(proc)

	result := Result{
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
		ExitCode: exitCode,
	}
	if dir := proc.Getwd(); dir != s.wd {
		result.NewDir = dir
	}
	return result
}

// writeRedirect stores stdout into the redirection target. Parent
// directories are not created implicitly.
func (s *Session) writeRedirect(redirect *Redirect, stdout string) error {
	if redirect.Target == "" {
		return fmt.Errorf("missing redirection target")
	}

	target := vfs.Resolve(s.wd, redirect.Target)
	if redirect.Append {
		return vfs.AppendFile(s.fs, target, []byte(stdout))
	}
	return vfs.WriteFile(s.fs, target, []byte(stdout))
}

// formatResult folds one segment's streams into a display chunk, appending
// an exit-code trailer for failed segments. Empty when nothing to show.
func formatResult(stdout, stderr string, exitCode int) string {
	var parts []string
	if out := strings.TrimRight(stdout, "\n"); out != "" {
		parts = append(parts, out)
	}
	if errOut := strings.TrimRight(stderr, "\n"); errOut != "" {
		parts = append(parts, errOut)
	}
	if exitCode != 0 {
		parts = append(parts, fmt.Sprintf("Exit code: %d", exitCode))
	}
	return strings.Join(parts, "\n")
}
