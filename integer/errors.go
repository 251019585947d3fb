package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")

// ErrRange is returned when a block doesn't fit the requested Go integer.
var ErrRange = Error.New("value out of range")
