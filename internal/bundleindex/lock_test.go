package bundleindex

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/three-bundles/update-index/internal/model"
)

func TestWriteIndexWithLock(t *testing.T) {
	name := filepath.Join(t.TempDir(), DefaultFilename)

	_, err := WriteIndex(context.Background(), name, model.Sections{"name": "hello.bundle"}, WriteOptions{Lock: true})
	assert.NoError(t, err)

	// the lock file is cleaned up
	_, err = os.Stat(name + ".lock")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteIndexFailsWhenLocked(t *testing.T) {
	org := indexLockTimeout
	indexLockTimeout = 50 * time.Millisecond
	defer func() { indexLockTimeout = org }()

	name := filepath.Join(t.TempDir(), DefaultFilename)

	// given: another process holding the lock
	other := flock.New(name + ".lock")
	locked, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer other.Unlock()

	// when: writing the index with lock
	_, err = WriteIndex(context.Background(), name, model.Sections{"name": "hello.bundle"}, WriteOptions{Lock: true})

	// then: the index is not written
	assert.ErrorIs(t, err, ErrIndexLocked)
	_, err = os.Stat(name)
	assert.ErrorIs(t, err, os.ErrNotExist)
	// and then: the foreign lock file is not removed
	_, err = os.Stat(name + ".lock")
	assert.NoError(t, err)
}
