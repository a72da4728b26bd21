package macrostate

import "errors"

// ErrNotFound reports that no value is stored for a key under the current
// epoch. Read errors wrap it, so callers match with errors.Is.
var ErrNotFound = errors.New("macrostate: state not found")
