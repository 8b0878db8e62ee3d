package commands

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/sandshell/sandshell/core/vos"
)

// destinationPath maps a source onto dst, descending into dst when it is an
// existing directory.
func destinationPath(virtOS vos.VOS, src, dst string) string {
	if info, err := virtOS.Stat(dst); err == nil && info.IsDir() {
		return path.Join(dst, path.Base(src))
	}
	return dst
}

func copyFile(virtOS vos.VOS, src, dst string, mode os.FileMode) error {
	data, err := afero.ReadFile(virtOS, src)
	if err != nil {
		return err
	}
	return afero.WriteFile(virtOS, dst, data, mode)
}

func copyTree(virtOS vos.VOS, src, dst string) error {
	return afero.Walk(virtOS, src, func(walkPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(walkPath, src)
		target := path.Join(dst, rel)
		if info.IsDir() {
			return virtOS.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(virtOS, walkPath, target, info.Mode().Perm())
	})
}

// Cp implements the POSIX cp command.
func Cp(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cp [-r] SOURCE... DEST",
		Short: "Copy files and directories.",
	}

	recursive := cmd.Flags().Bool('r', "copy directories recursively")

	return cmd.RunE(virtOS, func() error {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			return errors.New("missing destination file operand")
		}

		sources, dst := args[:len(args)-1], args[len(args)-1]
		if len(sources) > 1 {
			if info, err := virtOS.Stat(dst); err != nil || !info.IsDir() {
				return fmt.Errorf("target %q is not a directory", dst)
			}
		}

		for _, src := range sources {
			info, err := virtOS.Stat(src)
			if err != nil {
				return fmt.Errorf("cannot stat %q: No such file or directory", src)
			}

			target := destinationPath(virtOS, src, dst)
			if info.IsDir() {
				if !*recursive {
					return fmt.Errorf("-r not specified; omitting directory %q", src)
				}
				if err := copyTree(virtOS, src, target); err != nil {
					return err
				}
				continue
			}

			if err := copyFile(virtOS, src, target, info.Mode().Perm()); err != nil {
				return err
			}
		}
		return nil
	})
}

// Mv implements the POSIX mv command.
func Mv(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "mv SOURCE... DEST",
		Short: "Move or rename files and directories.",
	}

	return cmd.RunE(virtOS, func() error {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			return errors.New("missing destination file operand")
		}

		sources, dst := args[:len(args)-1], args[len(args)-1]
		if len(sources) > 1 {
			if info, err := virtOS.Stat(dst); err != nil || !info.IsDir() {
				return fmt.Errorf("target %q is not a directory", dst)
			}
		}

		for _, src := range sources {
			if _, err := virtOS.Stat(src); err != nil {
				return fmt.Errorf("cannot stat %q: No such file or directory", src)
			}
			if err := virtOS.Rename(src, destinationPath(virtOS, src, dst)); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ vos.ProcessFunc = Cp
var _ vos.ProcessFunc = Mv

func init() {
	register(&Command{
		Name:  "cp",
		Use:   "cp [-r] SOURCE... DEST",
		Short: "Copy files and directories.",
		Proc:  Cp,
	})
	register(&Command{
		Name:  "mv",
		Use:   "mv SOURCE... DEST",
		Short: "Move or rename files and directories.",
		Proc:  Mv,
	})
}
