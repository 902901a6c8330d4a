package db

import "context"

// Revisioned is implemented by every stored document type so Collection can
// stamp the current CouchDB revision onto a document before a Replace
// without the caller having to thread _rev through by hand.
type Revisioned interface {
	SetRev(rev string)
}

// Documents is the narrow collaborator interface every domain store depends
// on instead of a concrete CouchDB client, per spec.md's "Collaborator
// interfaces: thin adapters over document store and auth for testability"
// line item. Collection (CouchDB-backed) and MemoryCollection (in-memory
// fake) both satisfy it, so manuscripts/people/text/comments package tests
// run without a live database.
type Documents interface {
	Insert(ctx context.Context, id string, doc interface{}) (rev string, err error)
	Get(ctx context.Context, id string, out interface{}) error
	Find(ctx context.Context, selector map[string]interface{}, out interface{}) error
	Replace(ctx context.Context, id, rev string, doc interface{}) (newRev string, err error)
	Delete(ctx context.Context, id, rev string) error
	Rev(ctx context.Context, id string) (string, error)
}

func withRev(doc interface{}, rev string) interface{} {
	if r, ok := doc.(Revisioned); ok {
		r.SetRev(rev)
	}
	return doc
}
