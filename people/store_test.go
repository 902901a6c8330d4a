package people

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal.dev/editorial/db"
	"journal.dev/editorial/errs"
	"journal.dev/editorial/roles"
)

func newTestStore() *Store {
	return NewStore(db.NewMemoryCollection("people"), nil)
}

func TestCreateThenRead(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	p, err := s.Create(ctx, &Person{Name: "Ada Lovelace", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, err := s.Read(ctx, ParseIdentifier(p.ID))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)

	byEmail, err := s.Read(ctx, ByEmail("ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, p.ID, byEmail.ID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Create(ctx, &Person{Name: "A", Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = s.Create(ctx, &Person{Name: "B", Email: "dup@example.com"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Conflict))
}

func TestCreateInvalidEmail(t *testing.T) {
	s := newTestStore()
	_, err := s.Create(context.Background(), &Person{Name: "A", Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestAddRoleThenDeleteRoleRoundTrips(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	p, err := s.Create(ctx, &Person{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = s.AddRole(ctx, p.ID, roles.Editor)
	require.NoError(t, err)

	_, err = s.DeleteRole(ctx, p.ID, roles.Editor)
	require.NoError(t, err)

	got, err := s.Read(ctx, ByID(p.ID))
	require.NoError(t, err)
	assert.Empty(t, got.Roles)
}

func TestAddRoleTwiceFails(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	p, err := s.Create(ctx, &Person{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = s.AddRole(ctx, p.ID, roles.Editor)
	require.NoError(t, err)

	_, err = s.AddRole(ctx, p.ID, roles.Editor)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestDeleteRoleAbsentFails(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	p, err := s.Create(ctx, &Person{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = s.DeleteRole(ctx, p.ID, roles.Referee)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestMastheadFiltersToEditorialRoles(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Create(ctx, &Person{Name: "Editor", Email: "editor@example.com", Roles: []roles.Code{roles.Editor}})
	require.NoError(t, err)
	_, err = s.Create(ctx, &Person{Name: "Author", Email: "author@example.com", Roles: []roles.Code{roles.Author}})
	require.NoError(t, err)

	m, err := s.Masthead(ctx)
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, "Editor", m[0].Name)
}

func TestDeleteThenReadNotFound(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	p, err := s.Create(ctx, &Person{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, p.ID))

	_, err = s.Read(ctx, ByID(p.ID))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NotFound))
}
