package evaluate

import "errors"

// ErrUnknownMethod indicates an Input carried a Method value outside
// MDL/Size/SetCover.
var ErrUnknownMethod = errors.New("evaluate: unknown method")
