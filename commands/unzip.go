package commands

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/sandshell/sandshell/core/vos"
)

// Unzip extracts or lists a zip archive stored in the virtual filesystem.
func Unzip(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "unzip [-l] FILE",
		Short: "Extract files from a ZIP archive.",
	}

	listOnly := cmd.Flags().Bool('l', "list archive contents without extracting")

	return cmd.RunE(virtOS, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			return errors.New("missing archive name")
		}

		data, err := afero.ReadFile(virtOS, args[0])
		if err != nil {
			return fmt.Errorf("cannot find or open %s", args[0])
		}

		reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return fmt.Errorf("%s: not a zip archive", args[0])
		}

		w := virtOS.Stdout()
		fmt.Fprintf(w, "Archive:  %s\n", args[0])

		for _, file := range reader.File {
			// Zip-slip guard: entries must stay under the extraction root.
			cleaned := path.Clean(file.Name)
			if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
				fmt.Fprintf(virtOS.Stderr(), "unzip: skipping unsafe path %q\n", file.Name)
				continue
			}

			if *listOnly {
				fmt.Fprintf(w, "%9d  %s\n", file.UncompressedSize64, file.Name)
				continue
			}

			if file.FileInfo().IsDir() {
				if err := virtOS.MkdirAll(cleaned, 0755); err != nil {
					return err
				}
				continue
			}

			rc, err := file.Open()
			if err != nil {
				return err
			}
			contents, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return err
			}

			if dir := path.Dir(cleaned); dir != "." {
				if err := virtOS.MkdirAll(dir, 0755); err != nil {
					return err
				}
			}
			if err := afero.WriteFile(virtOS, cleaned, contents, 0644); err != nil {
				return err
			}
			fmt.Fprintf(w, "  inflating: %s\n", cleaned)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Unzip

func init() {
	register(&Command{
		Name:  "unzip",
		Use:   "unzip [-l] FILE",
		Short: "Extract files from a ZIP archive.",
		Proc:  Unzip,
	})
}
