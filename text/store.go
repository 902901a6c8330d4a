package text

import (
	"context"
	"sort"

	"journal.dev/editorial/db"
	"journal.dev/editorial/errs"
	"journal.dev/editorial/validate"
)

// Store implements CRUD on manuscript text pages, per spec.md §4.6.
type Store struct {
	docs db.Documents
}

// NewStore builds a text-page Store over the given document collection.
func NewStore(docs db.Documents) *Store {
	return &Store{docs: docs}
}

// Create adds a page to a manuscript. Duplicate page numbers within the
// same manuscript are rejected with Conflict.
func (s *Store) Create(ctx context.Context, manuscriptID, pageNumber, title, body string) (*Page, error) {
	if err := validate.NonBlank("manuscript_id", manuscriptID); err != nil {
		return nil, err
	}
	if err := validate.NonBlank("page_number", pageNumber); err != nil {
		return nil, err
	}
	if err := validate.NonBlank("body", body); err != nil {
		return nil, err
	}

	id := docID(manuscriptID, pageNumber)
	p := &Page{ID: id, ManuscriptID: manuscriptID, PageNumber: pageNumber, Title: title, Body: body}
	rev, err := s.docs.Insert(ctx, id, p)
	if err != nil {
		if db.IsConflict(err) {
			return nil, errs.Newf(errs.Conflict, "page %q already exists for manuscript %s", pageNumber, manuscriptID)
		}
		return nil, err
	}
	p.Rev = rev
	return p, nil
}

// ReadOne returns a single page.
func (s *Store) ReadOne(ctx context.Context, manuscriptID, pageNumber string) (*Page, error) {
	var p Page
	if err := s.docs.Get(ctx, docID(manuscriptID, pageNumber), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReadByManuscript returns every page for manuscriptID, sorted
// lexicographically by page number (spec.md §9's resolved open question).
func (s *Store) ReadByManuscript(ctx context.Context, manuscriptID string) ([]Page, error) {
	var pages []Page
	if err := s.docs.Find(ctx, map[string]interface{}{"manuscript_id": manuscriptID}, &pages); err != nil {
		return nil, err
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNumber < pages[j].PageNumber })
	return pages, nil
}

// Update overwrites the title/body of an existing page.
func (s *Store) Update(ctx context.Context, manuscriptID, pageNumber, title, body string) (*Page, error) {
	p, err := s.ReadOne(ctx, manuscriptID, pageNumber)
	if err != nil {
		return nil, err
	}
	if err := validate.NonBlank("body", body); err != nil {
		return nil, err
	}
	p.Title = title
	p.Body = body
	rev, err := s.docs.Replace(ctx, p.ID, p.Rev, p)
	if err != nil {
		return nil, err
	}
	p.Rev = rev
	return p, nil
}

// Delete removes a single page.
func (s *Store) Delete(ctx context.Context, manuscriptID, pageNumber string) error {
	p, err := s.ReadOne(ctx, manuscriptID, pageNumber)
	if err != nil {
		return err
	}
	return s.docs.Delete(ctx, p.ID, p.Rev)
}

// DeleteByManuscript cascade-deletes every page owned by manuscriptID. The
// DELETE /manuscript/:id handler invokes it before deleting the manuscript.
func (s *Store) DeleteByManuscript(ctx context.Context, manuscriptID string) error {
	pages, err := s.ReadByManuscript(ctx, manuscriptID)
	if err != nil {
		return err
	}
	for _, p := range pages {
		if err := s.docs.Delete(ctx, p.ID, p.Rev); err != nil && !db.IsNotFound(err) {
			return err
		}
	}
	return nil
}
