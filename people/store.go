package people

import (
	"context"

	"github.com/sirupsen/logrus"

	"journal.dev/editorial/db"
	"journal.dev/editorial/errs"
	"journal.dev/editorial/ids"
	"journal.dev/editorial/roles"
	"journal.dev/editorial/validate"
)

// Store implements CRUD on persons over a Documents collaborator, per
// spec.md §4.3.
type Store struct {
	docs db.Documents
	log  *logrus.Entry
}

// NewStore builds a person Store over the given document collection.
func NewStore(docs db.Documents, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Store{docs: docs, log: log}
}

// Create registers a new person. The email must be syntactically valid and
// globally unique; an empty role set is allowed; PasswordHash, if set by
// the caller, is taken as-is (hashing is the auth collaborator's job, not
// the store's).
func (s *Store) Create(ctx context.Context, p *Person) (*Person, error) {
	if err := validate.NonBlank("name", p.Name); err != nil {
		return nil, err
	}
	if err := validate.Email(p.Email); err != nil {
		return nil, err
	}
	if _, err := s.findByEmail(ctx, p.Email); err == nil {
		return nil, errs.Newf(errs.Conflict, "email already registered: %s", p.Email)
	} else if !errs.Is(err, errs.NotFound) {
		return nil, err
	}
	for _, r := range p.Roles {
		if !roles.Valid(r) {
			return nil, errs.Newf(errs.InvalidArgument, "unknown role code %q", r)
		}
	}

	p.ID = ids.NewPersonID()
	rev, err := s.docs.Insert(ctx, p.ID, p)
	if err != nil {
		return nil, err
	}
	p.Rev = rev
	s.log.WithFields(logrus.Fields{"person_id": p.ID}).Info("person created")
	return p, nil
}

// Read resolves id (stable ID first, email as fallback, or explicitly one
// or the other via ByID/ByEmail) and returns the matching person.
func (s *Store) Read(ctx context.Context, id Identifier) (*Person, error) {
	switch id.kind {
	case kindID:
		return s.getByID(ctx, id.value)
	case kindEmail:
		return s.findByEmail(ctx, id.value)
	default:
		if p, err := s.getByID(ctx, id.value); err == nil {
			return p, nil
		} else if !errs.Is(err, errs.NotFound) {
			return nil, err
		}
		return s.findByEmail(ctx, id.value)
	}
}

func (s *Store) getByID(ctx context.Context, id string) (*Person, error) {
	var p Person
	if err := s.docs.Get(ctx, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) findByEmail(ctx context.Context, email string) (*Person, error) {
	var matches []Person
	if err := s.docs.Find(ctx, map[string]interface{}{"email": email}, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errs.Newf(errs.NotFound, "no person with email %s", email)
	}
	return &matches[0], nil
}

// Update overwrites name/affiliation/bio on the person identified by id. An
// empty name leaves the stored name unchanged.
func (s *Store) Update(ctx context.Context, id string, name, affiliation, bio string) (*Person, error) {
	p, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		p.Name = name
	}
	p.Affiliation = affiliation
	p.Bio = bio
	rev, err := s.docs.Replace(ctx, p.ID, p.Rev, p)
	if err != nil {
		return nil, err
	}
	p.Rev = rev
	return p, nil
}

// Delete removes the person identified by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	p, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	return s.docs.Delete(ctx, p.ID, p.Rev)
}

// AddRole adds role to the person's role set. Idempotent-failing: adding an
// already-held role returns InvalidArgument.
func (s *Store) AddRole(ctx context.Context, id string, role roles.Code) (*Person, error) {
	if !roles.Valid(role) {
		return nil, errs.Newf(errs.InvalidArgument, "unknown role code %q", role)
	}
	p, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roles.Contains(p.Roles, role) {
		return nil, errs.Newf(errs.InvalidArgument, "person already holds role %q", role)
	}
	p.Roles = append(p.Roles, role)
	rev, err := s.docs.Replace(ctx, p.ID, p.Rev, p)
	if err != nil {
		return nil, err
	}
	p.Rev = rev
	return p, nil
}

// DeleteRole removes role from the person's role set. Idempotent-failing:
// removing an absent role returns InvalidArgument.
func (s *Store) DeleteRole(ctx context.Context, id string, role roles.Code) (*Person, error) {
	p, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !roles.Contains(p.Roles, role) {
		return nil, errs.Newf(errs.InvalidArgument, "person does not hold role %q", role)
	}
	next := make([]roles.Code, 0, len(p.Roles)-1)
	for _, r := range p.Roles {
		if r != role {
			next = append(next, r)
		}
	}
	p.Roles = next
	rev, err := s.docs.Replace(ctx, p.ID, p.Rev, p)
	if err != nil {
		return nil, err
	}
	p.Rev = rev
	return p, nil
}

// Enumerate returns every person keyed by ID.
func (s *Store) Enumerate(ctx context.Context) (map[string]*Person, error) {
	var all []Person
	if err := s.docs.Find(ctx, map[string]interface{}{}, &all); err != nil {
		return nil, err
	}
	out := make(map[string]*Person, len(all))
	for i := range all {
		out[all[i].ID] = &all[i]
	}
	return out, nil
}

// IsEmpty reports whether the person collection currently has no members,
// used to gate the registration bootstrap rule in spec.md §6.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	all, err := s.Enumerate(ctx)
	if err != nil {
		return false, err
	}
	return len(all) == 0, nil
}

// Masthead returns the published projection of every person whose role set
// intersects {ED, ME, CE}.
func (s *Store) Masthead(ctx context.Context) ([]MastheadEntry, error) {
	all, err := s.Enumerate(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MastheadEntry, 0)
	for _, p := range all {
		if roles.AnyMasthead(p.Roles) {
			out = append(out, MastheadEntry{Name: p.Name, Email: p.Email, Roles: p.Roles})
		}
	}
	return out, nil
}
