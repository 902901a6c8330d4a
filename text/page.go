// Package text implements the per-manuscript text-page store: ordered
// pages scoped to a manuscript, cascade-deleted with it.
package text

// Page is one page of manuscript body text.
type Page struct {
	ID           string `json:"_id"`
	Rev          string `json:"_rev,omitempty"`
	ManuscriptID string `json:"manuscript_id"`
	PageNumber   string `json:"page_number"`
	Title        string `json:"title"`
	Body         string `json:"body"`
}

// SetRev implements db.Revisioned.
func (p *Page) SetRev(rev string) { p.Rev = rev }

func docID(manuscriptID, pageNumber string) string {
	return manuscriptID + "/" + pageNumber
}
