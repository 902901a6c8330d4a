// Package ids generates and checks the stable identifiers used for
// manuscripts, persons and comments, following the uuid.New usage pattern common
// across the example pack's services.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New generates a fresh identifier with the given prefix.
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NewManuscriptID generates a fresh manuscript identifier.
func NewManuscriptID() string {
	return New("ms")
}

// NewPersonID generates a fresh person identifier.
func NewPersonID() string {
	return New("p")
}

// NewCommentID generates a fresh comment identifier.
func NewCommentID() string {
	return New("c")
}

// Valid reports whether id is non-blank (not empty or whitespace-only). It
// does not check that id carries one of this package's prefixes.
func Valid(id string) bool {
	return strings.TrimSpace(id) != ""
}
