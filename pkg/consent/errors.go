package consent

import "errors"

// ErrNotFound is returned by MemoryStorage for a missing key.
var ErrNotFound = errors.New("consent: not found")
