package comments

import (
	"context"
	"time"

	"journal.dev/editorial/db"
	"journal.dev/editorial/ids"
	"journal.dev/editorial/validate"
)

// Store implements CRUD on comments over a Documents collaborator.
type Store struct {
	docs db.Documents
}

// NewStore builds a comment Store over the given document collection.
func NewStore(docs db.Documents) *Store {
	return &Store{docs: docs}
}

// Create attaches a new comment to a manuscript. Text must be non-blank;
// existence of the manuscript is the caller's responsibility (the API layer
// checks it with manuscripts.Store.Exists before calling here, keeping this
// store manuscript-agnostic).
func (s *Store) Create(ctx context.Context, manuscriptID, personID, text string) (*Comment, error) {
	if err := validate.NonBlank("text", text); err != nil {
		return nil, err
	}
	c := &Comment{
		ID:           ids.NewCommentID(),
		ManuscriptID: manuscriptID,
		PersonID:     personID,
		Text:         text,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	rev, err := s.docs.Insert(ctx, c.ID, c)
	if err != nil {
		return nil, err
	}
	c.Rev = rev
	return c, nil
}

// ReadByManuscript returns every comment attached to manuscriptID.
func (s *Store) ReadByManuscript(ctx context.Context, manuscriptID string) ([]Comment, error) {
	var out []Comment
	if err := s.docs.Find(ctx, map[string]interface{}{"manuscript_id": manuscriptID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites a comment's text.
func (s *Store) Update(ctx context.Context, id, text string) (*Comment, error) {
	if err := validate.NonBlank("text", text); err != nil {
		return nil, err
	}
	var c Comment
	if err := s.docs.Get(ctx, id, &c); err != nil {
		return nil, err
	}
	c.Text = text
	rev, err := s.docs.Replace(ctx, c.ID, c.Rev, &c)
	if err != nil {
		return nil, err
	}
	c.Rev = rev
	return &c, nil
}

// Delete removes a comment independently of its manuscript.
func (s *Store) Delete(ctx context.Context, id string) error {
	var c Comment
	if err := s.docs.Get(ctx, id, &c); err != nil {
		return err
	}
	return s.docs.Delete(ctx, c.ID, c.Rev)
}
