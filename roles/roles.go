// Package roles enumerates the closed set of role codes a person may hold
// and classifies which of them count as masthead (editorial staff) roles.
package roles

// Code is one of the closed two-letter role codes, stored verbatim in
// person records and over the wire.
type Code string

const (
	Author           Code = "AU"
	Referee          Code = "RE"
	Editor           Code = "ED"
	ManagingEditor   Code = "ME"
	ConsultingEditor Code = "CE"
)

// names gives the display name for each role code.
var names = []struct {
	code Code
	name string
}{
	{Author, "Author"},
	{Referee, "Referee"},
	{Editor, "Editor"},
	{ManagingEditor, "Managing Editor"},
	{ConsultingEditor, "Consulting Editor"},
}

// masthead is the subset of roles published as editorial staff.
var masthead = map[Code]bool{
	Editor:           true,
	ManagingEditor:   true,
	ConsultingEditor: true,
}

// Valid reports whether code is one of the closed enumeration values.
func Valid(code Code) bool {
	for _, n := range names {
		if n.code == code {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable name for code, or "" if code isn't
// recognized.
func DisplayName(code Code) string {
	for _, n := range names {
		if n.code == code {
			return n.name
		}
	}
	return ""
}

// All returns every role code mapped to its display name, for the GET
// /roles endpoint. The result is a map and carries no ordering.
func All() map[Code]string {
	out := make(map[Code]string, len(names))
	for _, n := range names {
		out[n.code] = n.name
	}
	return out
}

// IsMasthead reports whether code counts toward masthead membership.
func IsMasthead(code Code) bool {
	return masthead[code]
}

// AnyMasthead reports whether the given role set intersects the masthead
// subset {ED, ME, CE}.
func AnyMasthead(codes []Code) bool {
	for _, c := range codes {
		if masthead[c] {
			return true
		}
	}
	return false
}

// Contains reports whether codes already holds code.
func Contains(codes []Code, code Code) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
