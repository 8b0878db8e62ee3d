package vos

import (
	"io"
	"strings"
)

// VIOAdapter bundles stdio streams into a VIO.
type VIOAdapter struct {
	IStdin  io.Reader
	IStdout io.Writer
	IStderr io.Writer
}

var _ VIO = (*VIOAdapter)(nil)

func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{IStdin: stdin, IStdout: stdout, IStderr: stderr}
}

// NewNullIO returns a VIO with empty stdin and discarded output.
func NewNullIO() VIO {
	return NewVIOAdapter(strings.NewReader(""), io.Discard, io.Discard)
}

func (a *VIOAdapter) Stdin() io.Reader {
	return a.IStdin
}

func (a *VIOAdapter) Stdout() io.Writer {
	return a.IStdout
}

func (a *VIOAdapter) Stderr() io.Writer {
	return a.IStderr
}
