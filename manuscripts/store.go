package manuscripts

import (
	"context"

	"journal.dev/editorial/db"
	"journal.dev/editorial/errs"
	"journal.dev/editorial/ids"
	"journal.dev/editorial/validate"
)

// Store implements CRUD and filter-based queries on manuscript records,
// per spec.md §2's "Manuscript store" component.
type Store struct {
	docs db.Documents
}

// NewStore builds a manuscript Store over the given document collection.
func NewStore(docs db.Documents) *Store {
	return &Store{docs: docs}
}

// Create registers a new manuscript. It always starts in Submitted with a
// single-element history and an empty referee sequence, per spec.md §8's
// round-trip property.
func (s *Store) Create(ctx context.Context, title, author, authorEmail, editorEmail, abstract string) (*Manuscript, error) {
	if err := validate.NonBlank("title", title); err != nil {
		return nil, err
	}
	if err := validate.NonBlank("author", author); err != nil {
		return nil, err
	}
	if err := validate.NonBlank("abstract", abstract); err != nil {
		return nil, err
	}
	if err := validate.Email(authorEmail); err != nil {
		return nil, err
	}
	if err := validate.Email(editorEmail); err != nil {
		return nil, err
	}

	m := &Manuscript{
		ID:          ids.NewManuscriptID(),
		Title:       title,
		Author:      author,
		AuthorEmail: authorEmail,
		EditorEmail: editorEmail,
		Abstract:    abstract,
		State:       Submitted,
		Referees:    []string{},
		History:     []StateCode{Submitted},
	}
	rev, err := s.docs.Insert(ctx, m.ID, m)
	if err != nil {
		return nil, err
	}
	m.Rev = rev
	return m, nil
}

// Read loads a single manuscript by ID.
func (s *Store) Read(ctx context.Context, id string) (*Manuscript, error) {
	var m Manuscript
	if err := s.docs.Get(ctx, id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Enumerate returns every manuscript keyed by ID.
func (s *Store) Enumerate(ctx context.Context) (map[string]*Manuscript, error) {
	var all []Manuscript
	if err := s.docs.Find(ctx, map[string]interface{}{}, &all); err != nil {
		return nil, err
	}
	out := make(map[string]*Manuscript, len(all))
	for i := range all {
		out[all[i].ID] = &all[i]
	}
	return out, nil
}

// Update overwrites title/author/abstract/editor email on an existing
// manuscript. State, history, and referees are not touched here; those are
// mutated only through Executor.Transition.
func (s *Store) Update(ctx context.Context, id, title, author, editorEmail, abstract string) (*Manuscript, error) {
	m, err := s.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validate.NonBlank("title", title); err != nil {
		return nil, err
	}
	if err := validate.NonBlank("author", author); err != nil {
		return nil, err
	}
	if err := validate.Email(editorEmail); err != nil {
		return nil, err
	}
	m.Title = title
	m.Author = author
	m.EditorEmail = editorEmail
	m.Abstract = abstract
	return m, s.persist(ctx, m)
}

// Delete removes a manuscript. Cascade-deleting its text pages is the
// caller's responsibility (the api layer composes Store.Delete with
// text.Store.DeleteByManuscript, keeping the two stores independent
// collaborators per spec.md §3's ownership note).
func (s *Store) Delete(ctx context.Context, id string) error {
	m, err := s.Read(ctx, id)
	if err != nil {
		return err
	}
	return s.docs.Delete(ctx, m.ID, m.Rev)
}

// persist writes m back with its current Rev and updates Rev on success.
// This is the single atomic replace spec.md §4.2 and §5 describe: the
// whole candidate document is composed in memory first, then written once.
func (s *Store) persist(ctx context.Context, m *Manuscript) error {
	rev, err := s.docs.Replace(ctx, m.ID, m.Rev, m)
	if err != nil {
		return err
	}
	m.Rev = rev
	return nil
}

// Exists is a thin existence precondition used by callers outside this
// package (the API layer) before delegating to other stores, e.g. before
// creating a comment against a manuscript.
func (s *Store) Exists(ctx context.Context, id string) error {
	if _, err := s.Read(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return errs.Newf(errs.NotFound, "manuscript %q not found", id)
		}
		return err
	}
	return nil
}
