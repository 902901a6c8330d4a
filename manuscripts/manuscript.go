// Package manuscripts implements the manuscript lifecycle engine: the
// finite-state machine governing legal transitions, the transition
// executor that applies them atomically, and the manuscript store's CRUD
// and filter-based queries. This is the load-bearing core of the service.
package manuscripts

// StateCode is one of the ten closed publishing states a manuscript may
// occupy.
type StateCode string

const (
	Submitted       StateCode = "SUB"
	InRefereeReview StateCode = "REV"
	CopyEdit        StateCode = "CED"
	AuthorReview    StateCode = "AUR"
	AuthorRevision  StateCode = "ARV"
	EditorReview    StateCode = "EDR"
	Formatting      StateCode = "FMT"
	Published       StateCode = "PUB"
	Rejected        StateCode = "REJ"
	Withdrawn       StateCode = "WIT"
)

// Terminal reports whether state allows no action other than Withdraw.
func (s StateCode) Terminal() bool {
	return s == Published || s == Rejected || s == Withdrawn
}

// Action is one of the eight operations that may be requested against a
// manuscript.
type Action string

const (
	AssignReferee       Action = "ARF"
	DeleteReferee       Action = "DRF"
	SubmitReview        Action = "SBR"
	Accept              Action = "ACC"
	AcceptWithRevisions Action = "AWR"
	Reject              Action = "REJ"
	Done                Action = "DON"
	Withdraw            Action = "WIT"
)

// Manuscript is a submission tracked through the editorial workflow.
type Manuscript struct {
	ID          string      `json:"_id"`
	Rev         string      `json:"_rev,omitempty"`
	Title       string      `json:"title"`
	Author      string      `json:"author"`
	AuthorEmail string      `json:"author_email"`
	EditorEmail string      `json:"editor_email"`
	Abstract    string      `json:"abstract"`
	State       StateCode   `json:"state"`
	Referees    []string    `json:"referees"`
	History     []StateCode `json:"history"`
}

// SetRev implements db.Revisioned.
func (m *Manuscript) SetRev(rev string) { m.Rev = rev }
