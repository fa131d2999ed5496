package book

import (
	"fmt"
	"strings"
)

// Field validators. Each is a pure function over a single primitive
// value: on success it returns its input unchanged so validators can
// be chained, on failure it returns an *InvalidArgumentError naming
// the field and a reason code.

// NonEmptyString rejects empty and all-whitespace strings.
func NonEmptyString(field, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", &InvalidArgumentError{Field: field, Reason: ReasonEmptyOrWhitespace}
	}
	return s, nil
}

// PositivePageCount rejects page counts of zero or less.
func PositivePageCount(field string, n int) (int, error) {
	if n <= 0 {
		return 0, &InvalidArgumentError{Field: field, Reason: ReasonNonPositivePageCount}
	}
	return n, nil
}

// ISBN checks the structural ISBN rule: after stripping hyphens the
// string must be exactly 10 or 13 characters long. Hyphen placement is
// not inspected and no check digit is computed. The original string,
// hyphens intact, is returned on success.
func ISBN(field, s string) (string, error) {
	if _, err := NonEmptyString(field, s); err != nil {
		return "", err
	}
	stripped := strings.ReplaceAll(s, "-", "")
	if len(stripped) != 10 && len(stripped) != 13 {
		return "", &InvalidArgumentError{Field: field, Reason: ReasonInvalidISBNLength}
	}
	return s, nil
}

// ParseGenre maps a raw string onto the closed Genre set.
func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if !knownGenres[g] {
		return "", fmt.Errorf("%w: %q", ErrUnknownGenre, s)
	}
	return g, nil
}
