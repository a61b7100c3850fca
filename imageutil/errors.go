package imageutil

import "errors"

// ErrInvalidParameter reports a primitive invoked with a value outside its
// documented range (for example a non-positive blur sigma). Callers match
// it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrFileAccess reports a source image that could not be opened or decoded.
var ErrFileAccess = errors.New("file access error")
