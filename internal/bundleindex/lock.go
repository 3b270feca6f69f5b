package bundleindex

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gofrs/flock"
)

const indexLockRetryDelay = 13 * time.Millisecond

var indexLockTimeout = 5 * time.Second // modifiable for testing

type unlockFunc func()

// lockIndex acquires the advisory lock guarding the index file name. The lock file is removed on unlock.
func lockIndex(ctx context.Context, name string) (unlockFunc, error) {
	fl := flock.New(name + ".lock")
	ctx, cancel := context.WithTimeout(ctx, indexLockTimeout)

	locked, err := fl.TryLockContext(ctx, indexLockRetryDelay)
	if err != nil || !locked {
		cancel()
		if err == nil || errors.Is(err, context.DeadlineExceeded) {
			return func() {}, ErrIndexLocked
		}
		return func() {}, err
	}
	return func() {
		cancel()
		_ = os.Remove(fl.Path())
		_ = fl.Unlock()
	}, nil
}
