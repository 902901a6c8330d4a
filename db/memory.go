package db

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
)

// MemoryCollection is an in-memory fake satisfying Documents, used by domain
// package tests so manuscript/people/text/comment business logic can be
// exercised without a live CouchDB instance. It round-trips documents
// through JSON the same way the real Collection does (ScanDoc also decodes
// JSON under the hood), so struct tag mistakes surface in tests too.
type MemoryCollection struct {
	mu      sync.Mutex
	name    string
	docs    map[string][]byte // id -> last-written JSON
	revs    map[string]string // id -> current rev
	counter int
}

var _ Documents = (*MemoryCollection)(nil)

// NewMemoryCollection returns an empty fake collection named name (the name
// is cosmetic, used only in error messages).
func NewMemoryCollection(name string) *MemoryCollection {
	return &MemoryCollection{
		name: name,
		docs: make(map[string][]byte),
		revs: make(map[string]string),
	}
}

func (m *MemoryCollection) nextRev() string {
	m.counter++
	return "1-" + strconv.Itoa(m.counter)
}

func (m *MemoryCollection) Insert(_ context.Context, id string, doc interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; exists {
		return "", wrapErr(m.name, id, errConflict)
	}
	rev := m.nextRev()
	raw, err := json.Marshal(withRev(doc, rev))
	if err != nil {
		return "", err
	}
	m.docs[id] = raw
	m.revs[id] = rev
	return rev, nil
}

func (m *MemoryCollection) Get(_ context.Context, id string, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.docs[id]
	if !ok {
		return wrapErr(m.name, id, errNotFound)
	}
	return json.Unmarshal(raw, out)
}

func (m *MemoryCollection) Find(_ context.Context, selector map[string]interface{}, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	appender, err := newSliceAppender(out)
	if err != nil {
		return err
	}
	for _, raw := range m.docs {
		var generic map[string]interface{}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		if !matchesSelector(generic, selector) {
			continue
		}
		elem := appender.newElem()
		if err := json.Unmarshal(raw, elem); err != nil {
			return err
		}
		appender.append(elem)
	}
	return nil
}

func (m *MemoryCollection) Replace(_ context.Context, id, rev string, doc interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.revs[id]
	if !ok {
		return "", wrapErr(m.name, id, errNotFound)
	}
	if current != rev {
		return "", wrapErr(m.name, id, errConflict)
	}
	newRev := m.nextRev()
	raw, err := json.Marshal(withRev(doc, newRev))
	if err != nil {
		return "", err
	}
	m.docs[id] = raw
	m.revs[id] = newRev
	return newRev, nil
}

func (m *MemoryCollection) Delete(_ context.Context, id, rev string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.revs[id]
	if !ok {
		return wrapErr(m.name, id, errNotFound)
	}
	if current != rev {
		return wrapErr(m.name, id, errConflict)
	}
	delete(m.docs, id)
	delete(m.revs, id)
	return nil
}

func (m *MemoryCollection) Rev(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rev, ok := m.revs[id]
	if !ok {
		return "", wrapErr(m.name, id, errNotFound)
	}
	return rev, nil
}

// matchesSelector implements the small subset of Mango selector syntax the
// domain stores actually emit: flat field equality and {"$in": [...]}
// membership. It intentionally doesn't attempt full Mango semantics.
func matchesSelector(doc map[string]interface{}, selector map[string]interface{}) bool {
	for field, want := range selector {
		got, present := doc[field]
		switch w := want.(type) {
		case map[string]interface{}:
			in, ok := w["$in"].([]interface{})
			if !ok || !present {
				return false
			}
			if !containsValue(in, got) {
				return false
			}
		default:
			if !present || !equalJSON(got, want) {
				return false
			}
		}
	}
	return true
}

func containsValue(haystack []interface{}, needle interface{}) bool {
	for _, v := range haystack {
		if equalJSON(v, needle) {
			return true
		}
	}
	return false
}

func equalJSON(a, b interface{}) bool {
	ab, _ := json.Marshal(a)
	bb, _ := json.Marshal(b)
	return string(ab) == string(bb)
}

var (
	errNotFound = plainErr("not found")
	errConflict = plainErr("conflict")
)

type plainErr string

func (e plainErr) Error() string { return string(e) }
