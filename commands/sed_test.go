package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandshell/sandshell/core/vos/vostest"
)

func TestParseSedScript(t *testing.T) {
	cases := []struct {
		script  string
		wantErr bool
		check   func(t *testing.T, spec *sedSpec)
	}{
		{script: "s/a/b/", check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, byte('s'), spec.verb)
			assert.False(t, spec.global)
			assert.Equal(t, addrNone, spec.addr.kind)
		}},
		{script: "s/a/b/g", check: func(t *testing.T, spec *sedSpec) {
			assert.True(t, spec.global)
		}},
		{script: "s|a|b|gi", check: func(t *testing.T, spec *sedSpec) {
			assert.True(t, spec.global)
			assert.True(t, spec.re.MatchString("A"))
		}},
		{script: "3d", check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, byte('d'), spec.verb)
			assert.Equal(t, addrLine, spec.addr.kind)
			assert.Equal(t, 3, spec.addr.line)
		}},
		{script: "$d", check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, addrLast, spec.addr.kind)
		}},
		{script: "/foo/p", check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, addrRegex, spec.addr.kind)
			assert.True(t, spec.addr.matches(1, "a foo b"))
			assert.False(t, spec.addr.matches(1, "bar"))
		}},
		{script: "2q", check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, byte('q'), spec.verb)
		}},
		{script: `a\appended`, check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, "appended", spec.text)
		}},
		{script: "a appended", check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, "appended", spec.text)
		}},
		{script: "c replaced", check: func(t *testing.T, spec *sedSpec) {
			assert.Equal(t, "replaced", spec.text)
		}},
		// An invalid substitute pattern parses but never substitutes.
		{script: `s/[/x/`, check: func(t *testing.T, spec *sedSpec) {
			assert.Nil(t, spec.re)
		}},

		{script: "", wantErr: true},
		{script: "z", wantErr: true},
		{script: "s/a/b", wantErr: true},
		{script: "s/a/b/x", wantErr: true},
		{script: "dextra", wantErr: true},
		{script: "0d", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.script, func(t *testing.T) {
			spec, err := parseSedScript(tc.script)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, spec)
			}
		})
	}
}

func TestSedReplacementToGo(t *testing.T) {
	cases := []struct {
		repl string
		want string
	}{
		{`hi`, `hi`},
		{`\1-\2`, `$1-$2`},
		{`[&]`, `[${0}]`},
		{`$5`, `$$5`},
		{`a\nb`, "a\nb"},
		{`a\tb`, "a\tb"},
	}

	for _, tc := range cases {
		t.Run(tc.repl, func(t *testing.T) {
			assert.Equal(t, tc.want, sedReplacementToGo(tc.repl))
		})
	}
}

func TestRunSedScripts(t *testing.T) {
	cases := []struct {
		name    string
		scripts []string
		input   string
		quiet   bool
		want    string
	}{
		{
			name:    "substitute first only",
			scripts: []string{"s/hello/hi/"},
			input:   "hello hello world\n",
			want:    "hi hello world\n",
		},
		{
			name:    "substitute global",
			scripts: []string{"s/hello/hi/g"},
			input:   "hello hello world\n",
			want:    "hi hi world\n",
		},
		{
			name:    "substitute ignore case",
			scripts: []string{"s/HELLO/hi/i"},
			input:   "hello world\n",
			want:    "hi world\n",
		},
		{
			name:    "substitute group reference",
			scripts: []string{`s/(w.)(rld)/\2\1/g`},
			input:   "world\n",
			want:    "rldwo\n",
		},
		{
			name:    "substitute whole match",
			scripts: []string{`s/world/[&]/`},
			input:   "hello world\n",
			want:    "hello [world]\n",
		},
		{
			name:    "substitute on addressed line only",
			scripts: []string{"2s/a/b/"},
			input:   "a\na\na\n",
			want:    "a\nb\na\n",
		},
		{
			name:    "invalid regex passes through",
			scripts: []string{`s/[unclosed/x/`},
			input:   "keep [unclosed here\n",
			want:    "keep [unclosed here\n",
		},
		{
			name:    "delete by line",
			scripts: []string{"2d"},
			input:   "one\ntwo\nthree\n",
			want:    "one\nthree\n",
		},
		{
			name:    "delete by regex",
			scripts: []string{"/t/d"},
			input:   "one\ntwo\nthree\n",
			want:    "one\n",
		},
		{
			name:    "last line address never matches",
			scripts: []string{"$d"},
			input:   "one\ntwo\n",
			want:    "one\ntwo\n",
		},
		{
			name:    "print duplicates",
			scripts: []string{"1p"},
			input:   "one\ntwo\n",
			want:    "one\none\ntwo\n",
		},
		{
			name:    "quiet print selects",
			scripts: []string{"/two/p"},
			input:   "one\ntwo\nthree\n",
			quiet:   true,
			want:    "two\n",
		},
		{
			name:    "quit after line",
			scripts: []string{"2q"},
			input:   "one\ntwo\nthree\nfour\n",
			want:    "one\ntwo\n",
		},
		{
			name:    "append after match",
			scripts: []string{`/two/a\after`},
			input:   "one\ntwo\n",
			want:    "one\ntwo\nafter\n",
		},
		{
			name:    "insert before match",
			scripts: []string{`/two/i\before`},
			input:   "one\ntwo\n",
			want:    "one\nbefore\ntwo\n",
		},
		{
			name:    "change matching line",
			scripts: []string{"/tw/c changed"},
			input:   "one\ntwo\n",
			want:    "one\nchanged\n",
		},
		{
			name:    "scripts chain in order",
			scripts: []string{"s/a/b/", "s/b/c/"},
			input:   "a\n",
			want:    "c\n",
		},
		{
			name:    "no trailing newline preserved",
			scripts: []string{"s/a/b/"},
			input:   "a",
			want:    "b",
		},
		{
			name:    "delete everything keeps trailing newline",
			scripts: []string{"d"},
			input:   "one\ntwo\n",
			want:    "\n",
		},
		{
			name:    "delete everything without trailing newline",
			scripts: []string{"d"},
			input:   "one\ntwo",
			want:    "",
		},
		{
			name:    "empty input stays empty",
			scripts: []string{"s/a/b/"},
			input:   "",
			want:    "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runSedScripts(tc.scripts, tc.input, tc.quiet)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSed_stdin(t *testing.T) {
	out, code := combinedOutput(t, Sed, "hello hello world\n", "sed", "s/hello/hi/g")

	assert.Equal(t, 0, code)
	assert.Equal(t, "hi hi world\n", out)
}

func TestSed_expressions(t *testing.T) {
	out, code := combinedOutput(t, Sed, "a\n", "sed", "-e", "s/a/b/", "-e", "s/b/c/")

	assert.Equal(t, 0, code)
	assert.Equal(t, "c\n", out)
}

func TestSed_quiet(t *testing.T) {
	out, code := combinedOutput(t, Sed, "one\ntwo\nthree\n", "sed", "-n", "/two/p")

	assert.Equal(t, 0, code)
	assert.Equal(t, "two\n", out)
}

func TestSed_invalidScript(t *testing.T) {
	out, code := combinedOutput(t, Sed, "input\n", "sed", "s/broken")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "sed: Invalid sed script")
}

func TestSed_absolutePath(t *testing.T) {
	out, code := combinedOutput(t, Sed, "", "sed", "s/a/b/", "/etc/passwd")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "absolute paths are not supported")
}

func TestSed_file(t *testing.T) {
	cmd := vostest.Command(Sed, "sed", "s/a/b/", "input.txt")
	require.NoError(t, afero.WriteFile(cmd.FS, "/input.txt", []byte("a\na\n"), 0644))

	out, err := cmd.CombinedOutput()

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "b\nb\n", string(out))
}

func TestSed_inPlace(t *testing.T) {
	cmd := vostest.Command(Sed, "sed", "-i", "s/old/new/g", "file.txt")
	require.NoError(t, afero.WriteFile(cmd.FS, "/file.txt", []byte("old line\nold again\n"), 0644))

	out, err := cmd.CombinedOutput()

	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Empty(t, string(out), "in-place editing prints nothing")

	contents, err := afero.ReadFile(cmd.FS, "/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "new line\nnew again\n", string(contents))
}

func TestSed_missingFile(t *testing.T) {
	_, code := combinedOutput(t, Sed, "", "sed", "s/a/b/", "nope.txt")

	assert.Equal(t, 1, code)
}
