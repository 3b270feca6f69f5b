package bundleindex

import "errors"

var (
	ErrUnrecognizedFormat = errors.New("unrecognized index format")
	ErrInvalidRevision    = errors.New("invalid revision in index")
	ErrIndexLocked        = errors.New("could not acquire lock on index file")
	ErrNoIndex            = errors.New("no bundle index found")
)
