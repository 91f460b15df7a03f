// Package errorspkg provides errors shared by the delivery layers.
package errorspkg

import "errors"

// ErrInternal is reported to clients in place of any unexpected error.
var ErrInternal = errors.New("internal error")
