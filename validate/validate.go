// Package validate is the ground-truth source for the field-level
// validation rules shared by every store: email syntax and non-blank
// strings. Existence preconditions are checked by each store itself.
package validate

import (
	"regexp"
	"strings"

	"journal.dev/editorial/errs"
)

// emailPattern matches spec.md §4.5's email definition: alphanumeric first
// character, then any run of `._%+-` or alphanumerics in the local part (the
// original's `[A-Za-z0-9._%+-]*`, confirmed by
// original_source/data/tests/test_people.py's underscore/dash cases), a
// single '@', a host segment that is alphanumeric with optional dots/dashes,
// and a 2-10 letter TLD.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9][a-zA-Z0-9._%+-]*@[a-zA-Z0-9]+(?:[.-][a-zA-Z0-9]+)*\.[a-zA-Z]{2,10}$`,
)

// Email reports whether s is a syntactically valid email address under the
// system's ground-truth rule. It returns an *errs.Error so callers can
// return it directly.
func Email(s string) error {
	if !emailPattern.MatchString(s) {
		return errs.Newf(errs.InvalidArgument, "invalid email: %q", s)
	}
	return nil
}

// NonBlank rejects strings whose trimmed length is zero, naming the field
// in the resulting error.
func NonBlank(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return errs.Newf(errs.InvalidArgument, "%s must not be blank", field)
	}
	return nil
}
