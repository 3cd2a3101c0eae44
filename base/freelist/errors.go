package freelist

import "errors"

// ErrBadSize indicates a non-positive block size passed to NewBlocks.
var ErrBadSize = errors.New("freelist: block size must be positive")
