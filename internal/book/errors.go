package book

import (
	"errors"
	"fmt"
)

// Machine-checkable reason codes carried by InvalidArgumentError.
const (
	ReasonEmptyOrWhitespace    = "empty-or-whitespace"
	ReasonNonPositivePageCount = "non-positive-page-count"
	ReasonInvalidISBNLength    = "invalid-isbn-length"
	ReasonNoGenres             = "no-genres"
)

// ErrUnknownGenre is returned by ParseGenre for a genre outside the
// known set.
var ErrUnknownGenre = errors.New("unknown genre")

// InvalidArgumentError reports a single rejected field. Validators
// return it synchronously and it is never recovered inside this
// package; the caller decides how to surface it.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// AsInvalidArgument unwraps err into an *InvalidArgumentError if it is
// one, for callers that want the field name and reason code.
func AsInvalidArgument(err error) (*InvalidArgumentError, bool) {
	var inv *InvalidArgumentError
	if errors.As(err, &inv) {
		return inv, true
	}
	return nil, false
}
