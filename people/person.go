// Package people implements the person store: CRUD keyed by stable ID with
// secondary lookup by email, role-set mutation, and the masthead
// projection.
package people

import "journal.dev/editorial/roles"

// Person is a journal contributor, editor, or referee record.
type Person struct {
	ID           string       `json:"_id"`
	Rev          string       `json:"_rev,omitempty"`
	Name         string       `json:"name"`
	Affiliation  string       `json:"affiliation"`
	Email        string       `json:"email"`
	Roles        []roles.Code `json:"roles"`
	Bio          string       `json:"bio,omitempty"`
	PasswordHash string       `json:"password_hash,omitempty"`
}

// SetRev implements db.Revisioned.
func (p *Person) SetRev(rev string) { p.Rev = rev }

// Scrub clears the password hash before a Person crosses the HTTP
// boundary. Every handler that serializes a Person (or a slice of them)
// must call this first; the field stays on the struct for document-store
// round-tripping, so the JSON tag alone can't hide it.
func (p *Person) Scrub() *Person {
	p.PasswordHash = ""
	return p
}

// ScrubAll applies Scrub to every entry of ps, keyed by ID as Enumerate
// returns them, and returns ps.
func ScrubAll(ps map[string]*Person) map[string]*Person {
	for _, p := range ps {
		p.Scrub()
	}
	return ps
}

// MastheadEntry is the published projection of a masthead member. Per
// SPEC_FULL.md §9, the chosen field shape is {name, email, roles}.
type MastheadEntry struct {
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Roles []roles.Code `json:"roles"`
}

// identifierKind distinguishes how an Identifier should be resolved.
type identifierKind int

const (
	// kindEither is a caller-supplied string of unknown shape: the store
	// tries it as a stable ID first, then falls back to an email lookup,
	// per spec.md §4.3's resolution order.
	kindEither identifierKind = iota
	kindID
	kindEmail
)

// Identifier is the sum type the store resolves against: either a stable ID
// or an email address. Representing this explicitly (rather than retrying
// a failed ID lookup as an email lookup inline) avoids the duck-typed
// lookup the source used.
type Identifier struct {
	kind  identifierKind
	value string
}

// ByID builds an Identifier that resolves only against the stable ID index.
func ByID(id string) Identifier { return Identifier{kind: kindID, value: id} }

// ByEmail builds an Identifier that resolves only against the email index.
func ByEmail(email string) Identifier { return Identifier{kind: kindEmail, value: email} }

// ParseIdentifier builds an Identifier from a caller-supplied string whose
// shape (ID vs. email) is unknown; the store resolves ID first, then email.
func ParseIdentifier(s string) Identifier { return Identifier{kind: kindEither, value: s} }
