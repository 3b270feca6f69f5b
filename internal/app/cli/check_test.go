package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/three-bundles/update-index/internal/bundleindex"
)

func TestCheckAfterUpdate(t *testing.T) {
	o, _ := captureOutput(t)
	dir := newBundle(t, map[string]string{
		"texture/wood.dds":  "",
		"mesh/monster.json": "{}",
	})
	_, err := Update(context.Background(), UpdateOptions{Target: Target{Dir: dir}})
	require.NoError(t, err)
	o.Reset()

	err = Check(context.Background(), Target{Dir: dir})
	assert.NoError(t, err)
	assert.Equal(t, "Checking index "+filepath.Join(dir, "index.js")+" ...\nOK\n", o.String())
}

func TestCheckFindsProblems(t *testing.T) {
	o, _ := captureOutput(t)
	dir := newBundle(t, map[string]string{
		"index.js":         `define([],{"name":"hello.bundle","revision":2,"texture":["wood.dds","gone.dds","wood.psd"]});`,
		"texture/wood.dds": "",
		"texture/wood.psd": "",
		"texture/new.gif":  "",
	})

	err := Check(context.Background(), Target{Dir: dir})
	assert.ErrorIs(t, err, errCheckFailed)
	out := o.String()
	assert.Contains(t, out, "[ERROR] texture/gone.dds: file does not exist\n")
	assert.Contains(t, out, "[ERROR] texture/wood.psd: unsupported extension\n")
	assert.Contains(t, out, "[WARN] texture/new.gif: not listed in index\n")
	assert.NotContains(t, out, "texture/wood.dds")
}

func TestCheckReportsInvalidStructure(t *testing.T) {
	o, _ := captureOutput(t)
	dir := newBundle(t, map[string]string{
		"index.js": `define([],{"revision":2});`,
	})

	err := Check(context.Background(), Target{Dir: dir})
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, o.String(), "[ERROR] index.js: invalid bundle index")
}

func TestCheckWithoutIndex(t *testing.T) {
	_, e := captureOutput(t)
	err := Check(context.Background(), Target{Dir: t.TempDir()})
	assert.ErrorIs(t, err, bundleindex.ErrNoIndex)
	assert.Contains(t, e.String(), "no bundle index found")
}

func TestCheckWarningsOnlyDoNotFail(t *testing.T) {
	captureOutput(t)
	dir := newBundle(t, map[string]string{
		"index.js":        `define([],{"name":"hello.bundle","revision":1});`,
		"sound/extra.ogg": "",
	})

	err := Check(context.Background(), Target{Dir: dir})
	assert.NoError(t, err)
}

func TestCheckResultTypeString(t *testing.T) {
	assert.Equal(t, "OK", CheckOK.String())
	assert.Equal(t, "WARN", CheckWarn.String())
	assert.Equal(t, "ERROR", CheckErr.String())
	assert.Equal(t, "unknown(7)", CheckResultType(7).String())
}
