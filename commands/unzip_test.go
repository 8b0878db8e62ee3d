package commands

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandshell/sandshell/core/vos/vostest"
)

func zipFixture(t *testing.T, files map[string]string) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, contents := range files {
		fd, err := w.Create(name)
		require.NoError(t, err)
		_, err = fd.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestUnzip_extract(t *testing.T) {
	cmd := vostest.Command(Unzip, "unzip", "/archive.zip")
	archive := zipFixture(t, map[string]string{
		"readme.txt":  "hello\n",
		"sub/data.md": "nested\n",
	})
	require.NoError(t, afero.WriteFile(cmd.FS, "/archive.zip", archive, 0644))

	out, err := cmd.CombinedOutput()

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Contains(t, string(out), "Archive:  /archive.zip")

	got, err := afero.ReadFile(cmd.FS, "/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))

	got, err = afero.ReadFile(cmd.FS, "/sub/data.md")
	require.NoError(t, err)
	assert.Equal(t, "nested\n", string(got))
}

func TestUnzip_list(t *testing.T) {
	cmd := vostest.Command(Unzip, "unzip", "-l", "/archive.zip")
	archive := zipFixture(t, map[string]string{"readme.txt": "hello\n"})
	require.NoError(t, afero.WriteFile(cmd.FS, "/archive.zip", archive, 0644))

	out, err := cmd.CombinedOutput()

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Contains(t, string(out), "readme.txt")

	extracted, err := afero.Exists(cmd.FS, "/readme.txt")
	require.NoError(t, err)
	assert.False(t, extracted, "-l must not extract")
}

func TestUnzip_unsafePaths(t *testing.T) {
	cmd := vostest.Command(Unzip, "unzip", "/archive.zip")
	archive := zipFixture(t, map[string]string{"../escape.txt": "nope\n"})
	require.NoError(t, afero.WriteFile(cmd.FS, "/archive.zip", archive, 0644))

	out, err := cmd.CombinedOutput()

	require.NoError(t, err)
	assert.Contains(t, string(out), "skipping unsafe path")

	escaped, err := afero.Exists(cmd.FS, "/escape.txt")
	require.NoError(t, err)
	assert.False(t, escaped)
}

func TestUnzip_notAnArchive(t *testing.T) {
	cmd := vostest.Command(Unzip, "unzip", "/plain.txt")
	require.NoError(t, afero.WriteFile(cmd.FS, "/plain.txt", []byte("not zip"), 0644))

	out, err := cmd.CombinedOutput()

	require.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, string(out), "not a zip archive")
}
