package utils

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequiredFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "index.js")
	require.NoError(t, os.WriteFile(name, []byte("\xef\xbb\xbfdefine([],{});"), 0664))

	abs, raw, err := ReadRequiredFile(name)
	assert.NoError(t, err)
	assert.Equal(t, name, abs)
	assert.Equal(t, "define([],{});", string(raw))

	_, _, err = ReadRequiredFile(dir)
	assert.ErrorContains(t, err, "is not a file")

	_, _, err = ReadRequiredFile(filepath.Join(dir, "missing.js"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in  string
		exp string
	}{
		{"/tmp/bundle", "/tmp/bundle"},
		{"bundle", "bundle"},
		{"~/bundle", filepath.Join(home, "bundle")},
		{"~", home},
	}
	for i, test := range tests {
		out, err := ExpandHome(test.in)
		assert.NoError(t, err)
		assert.Equal(t, test.exp, out, "in test %d", i)
	}
}

func TestEncodeJSONWithoutEscapeHTML(t *testing.T) {
	v := map[string]any{"b": []string{"<a>&.js"}, "a": 1}

	compact, err := EncodeJSONWithoutEscapeHTML(v, "")
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":["<a>&.js"]}`, string(compact))

	pretty, err := EncodeJSONWithoutEscapeHTML(v, "    ")
	assert.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1,\n    \"b\": [\n        \"<a>&.js\"\n    ]\n}", string(pretty))

	_, err = EncodeJSONWithoutEscapeHTML(map[string]any{"f": func() {}}, "")
	assert.Error(t, err)
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "index.js")

	require.NoError(t, AtomicWriteFile(name, []byte("first"), 0664))
	require.NoError(t, AtomicWriteFile(name, []byte("second"), 0664))

	raw, err := os.ReadFile(name)
	assert.NoError(t, err)
	assert.Equal(t, "second", string(raw))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadFileLines(t *testing.T) {
	name := filepath.Join(t.TempDir(), ".bundleignore")
	require.NoError(t, os.WriteFile(name, []byte("*.psd\n\n# comment\ntmp/\n"), 0664))

	lines, err := ReadFileLines(name)
	assert.NoError(t, err)
	assert.Equal(t, []string{"*.psd", "", "# comment", "tmp/"}, lines)

	_, err = ReadFileLines(name + ".missing")
	assert.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background(), ""))

	l := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, GetLogger(ctx, ""))
	assert.NotSame(t, l, GetLogger(ctx, "walker"))
}

func TestGetToolVersion(t *testing.T) {
	org := ToolVersion
	defer func() { ToolVersion = org }()

	ToolVersion = "n/a"
	assert.Equal(t, "n/a", GetToolVersion())
	ToolVersion = "v1.2.3"
	assert.Equal(t, "1.2.3", GetToolVersion())
}
