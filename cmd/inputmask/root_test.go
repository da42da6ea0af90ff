package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/inputmask"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestFormat_Pattern(t *testing.T) {
	out, _, err := run(t, "format", "--pattern", "(111) 111-1111", "5551234567", "555")
	require.NoError(t, err)
	require.Equal(t,
		"(555) 123-4567\t5551234567\tcomplete\n"+
			"(555) ___-____\t555_______\tincomplete\n",
		out)
}

func TestFormat_Preset(t *testing.T) {
	out, _, err := run(t, "format", "--preset", "hex-color", "FFAA00")
	require.NoError(t, err)
	require.Equal(t, "#ffaa00\tffaa00\tcomplete\n", out)
}

func TestFormat_Raw(t *testing.T) {
	out, _, err := run(t, "format", "--raw", "-p", "11/11/1111", "01/02/2024")
	require.NoError(t, err)
	require.Equal(t, "01022024\n", out)
}

func TestFormat_Revealing(t *testing.T) {
	out, _, err := run(t, "format", "--revealing", "-p", "111-1111 x 111", "4761")
	require.NoError(t, err)
	require.Equal(t, "476-1\t4761\tincomplete\n", out)
}

func TestFormat_Errors(t *testing.T) {
	_, _, err := run(t, "format", "123")
	require.ErrorIs(t, err, errNoMask)

	_, _, err = run(t, "format", "--preset", "nope", "123")
	require.ErrorContains(t, err, `unknown preset "nope"`)

	_, _, err = run(t, "format", "--pattern=--", "123")
	require.Error(t, err)

	_, _, err = run(t, "format", "-p", "11")
	require.Error(t, err)
}

func TestFormat_PlaceholderFlag(t *testing.T) {
	out, _, err := run(t, "format", "-p", "11-11", "--placeholder", "*", "1")
	require.NoError(t, err)
	require.Equal(t, "1*-**\t1***\tincomplete\n", out)

	out, _, err = run(t, "format", "-p", "11-11", "--hide-placeholder", "1")
	require.NoError(t, err)
	require.Equal(t, "1-\t1\tincomplete\n", out)
}

func TestFormat_PlaceholderFromEnv(t *testing.T) {
	t.Setenv("INPUTMASK_PLACEHOLDER", "*")
	out, _, err := run(t, "format", "-p", "11-11", "1")
	require.NoError(t, err)
	require.Equal(t, "1*-**\t1***\tincomplete\n", out)
}

func TestConfigFile_PresetsFile(t *testing.T) {
	dir := t.TempDir()
	presets := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(presets, []byte(`
presets:
  - name: zip
    description: US ZIP code
    pattern: "11111"
  - name: phone
    description: Local phone number
    pattern: "111-1111"
`), 0o644))

	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("placeholder: \"#\"\npresets_file: "+presets+"\n"), 0o644))

	out, _, err := run(t, "--config", cfg, "format", "--preset", "zip", "123")
	require.NoError(t, err)
	require.Equal(t, "123##\t123##\tincomplete\n", out)

	out, _, err = run(t, "--config", cfg, "format", "--preset", "phone", "5551234")
	require.NoError(t, err)
	require.Equal(t, "555-1234\t5551234\tcomplete\n", out)

	out, _, err = run(t, "--config", cfg, "presets")
	require.NoError(t, err)
	require.Contains(t, out, "US ZIP code")
	require.Contains(t, out, "Local phone number")
	require.NotContains(t, out, "(111) 111-1111")
}

func TestConfigFile_Missing(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "presets")
	require.ErrorContains(t, err, "reading config")
}

func TestPresets_ListsBuiltins(t *testing.T) {
	out, _, err := run(t, "presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	require.True(t, strings.HasPrefix(lines[0], "phone "), lines[0])
	require.Contains(t, lines[0], "(111) 111-1111")
	require.Contains(t, lines[1], "(revealing)")
}

func TestVersionFlag(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	require.Equal(t, inputmask.Version()+"\n", out)
}

func TestDebugFlag_LogsToStderr(t *testing.T) {
	_, errOut, err := run(t, "--debug", "format", "-p", "11", "12")
	require.NoError(t, err)
	require.Contains(t, errOut, "mask pattern set")
	require.Contains(t, errOut, "level=DEBUG")
}
