// Package comments implements simple CRUD on comments attached to
// manuscripts by editors or referees. Comments are not cascade-deleted
// when their manuscript or author is removed (spec.md §9, an open question
// this implementation leaves as-is).
package comments

// Comment is a remark attached to a manuscript by an editor or referee.
type Comment struct {
	ID           string `json:"_id"`
	Rev          string `json:"_rev,omitempty"`
	ManuscriptID string `json:"manuscript_id"`
	PersonID     string `json:"person_id"`
	Text         string `json:"text"`
	CreatedAt    string `json:"created_at"`
}

// SetRev implements db.Revisioned.
func (c *Comment) SetRev(rev string) { c.Rev = rev }
