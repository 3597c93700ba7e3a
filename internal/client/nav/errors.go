package nav

import "errors"

// ErrBadCrumbIndex is returned when a breadcrumb jump targets an index
// outside the stack.
var ErrBadCrumbIndex = errors.New("breadcrumb index out of range")
