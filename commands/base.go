// Package commands implements the sandboxed userland: each file registers
// one POSIX-like command against the shared registry.
package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/sandshell/sandshell/core/vos"
)

// Command describes one registered command.
type Command struct {
	// Name the command is invoked by.
	Name string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// EasterEgg hides the command from help and listings.
	EasterEgg bool
	// Proc is the implementation.
	Proc vos.ProcessFunc
}

var registry = make(map[string]*Command)

// register adds a command, panicking on duplicates so collisions surface at
// init time.
func register(cmd *Command) {
	if _, ok := registry[cmd.Name]; ok {
		panic(fmt.Sprintf("duplicate command registered: %q", cmd.Name))
	}
	if cmd.Proc == nil {
		panic(fmt.Sprintf("command %q has no process", cmd.Name))
	}
	registry[cmd.Name] = cmd
}

// Registry is a read-only view over the registered commands satisfying the
// interpreter's lookup interface.
type Registry struct{}

// Default returns the registry of all compiled-in commands.
func Default() *Registry {
	return &Registry{}
}

// Lookup returns the process registered under name.
func (*Registry) Lookup(name string) (vos.ProcessFunc, bool) {
	cmd, ok := registry[name]
	if !ok {
		return nil, false
	}
	return cmd.Proc, true
}

// Names returns the sorted command names, Easter eggs excluded.
func (*Registry) Names() []string {
	var names []string
	for name, cmd := range registry {
		if cmd.EasterEgg {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the visible commands sorted by name, for help output.
func List() []*Command {
	var out []*Command
	for _, cmd := range registry {
		if cmd.EasterEgg {
			continue
		}
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// lookup returns the full command entry, including hidden ones.
func lookup(name string) (*Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// SimpleCommand wires getopt parsing, help output, and common run loops for
// the individual commands.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not. If this is non-nil
	// when Run() is called, the default help flag isn't added.
	ShowHelp *bool
	// NeverBail runs the callback even when flag parsing fails.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}
	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// name returns the invoked command name for error messages.
func (s *SimpleCommand) name(virtOS vos.VOS) string {
	if args := virtOS.Args(); len(args) > 0 {
		return args[0]
	}
	return strings.Fields(s.Use)[0]
}

// Run parses flags then calls the callback if parsing succeeded.
func (s *SimpleCommand) Run(virtOS vos.VOS, callback func() int) int {
	opts := s.Flags()

	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(virtOS.Args(), nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(virtOS.Stderr(), "error: %s\n\n", err)
		s.PrintHelp(virtOS.Stderr())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return 0
	}

	return callback()
}

// RunE is Run for callbacks returning an error; the error becomes a one
// line "name: err" on stderr with exit code 1.
func (s *SimpleCommand) RunE(virtOS vos.VOS, callback func() error) int {
	return s.Run(virtOS, func() int {
		if err := callback(); err != nil {
			fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", s.name(virtOS), err)
			return 1
		}
		return 0
	})
}

// RunEachArg calls the callback once per positional argument, reporting
// each failure but continuing with the remaining arguments.
func (s *SimpleCommand) RunEachArg(virtOS vos.VOS, callback func(arg string) error) int {
	return s.Run(virtOS, func() int {
		exitCode := 0
		for _, arg := range s.Flags().Args() {
			if err := callback(arg); err != nil {
				fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", s.name(virtOS), err)
				exitCode = 1
			}
		}
		return exitCode
	})
}

// RunEachFileOrStdin calls the callback once per named file, or once with
// stdin when no files are given. Unlike the Run variants it performs no
// flag parsing and is meant to be called from inside a Run callback.
func (s *SimpleCommand) RunEachFileOrStdin(virtOS vos.VOS, files []string, callback func(name string, fd io.Reader) error) int {
	if len(files) == 0 {
		if err := callback("-", virtOS.Stdin()); err != nil {
			fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", s.name(virtOS), err)
			return 1
		}
		return 0
	}

	exitCode := 0
	for _, file := range files {
		err := func() error {
			fd, err := virtOS.Open(file)
			if err != nil {
				return err
			}
			defer fd.Close()
			return callback(file, fd)
		}()
		if err != nil {
			fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", s.name(virtOS), err)
			exitCode = 1
		}
	}
	return exitCode
}

// readInput concatenates the named files, or returns stdin when no files
// are given. Used by the filter commands that operate on whole buffers.
func readInput(virtOS vos.VOS, files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(virtOS.Stdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var buf strings.Builder
	for _, file := range files {
		fd, err := virtOS.Open(file)
		if err != nil {
			return "", err
		}
		_, err = io.Copy(&buf, fd)
		fd.Close()
		if err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// splitLines splits text into lines, tracking whether the input carried a
// trailing newline so output can preserve it exactly.
func splitLines(text string) (lines []string, trailingNewline bool) {
	trailingNewline = strings.HasSuffix(text, "\n")
	lines = strings.Split(text, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}
	return lines, trailingNewline
}

// joinLines is the inverse of splitLines.
func joinLines(lines []string, trailingNewline bool) string {
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}
