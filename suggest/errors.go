package suggest

import "errors"

// ErrNotLoaded is returned when an operation needs a catalog but no
// catalog has been loaded yet.
var ErrNotLoaded = errors.New("no catalog loaded")
