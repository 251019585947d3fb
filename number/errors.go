package number

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("number")

var (
	// ErrOutOfRange is returned when an argument is outside of its
	// permitted range (e.g. a negative digit count).
	ErrOutOfRange = Error.New("argument out of range")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrUnsupportedType is returned when comparing against a value that
	// has no conversion to Number.
	ErrUnsupportedType = Error.New("unsupported type")
)
