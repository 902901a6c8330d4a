package manuscripts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal.dev/editorial/db"
)

func TestCreateThenReadRoundTrips(t *testing.T) {
	store := NewStore(db.NewMemoryCollection("manuscripts"))
	ctx := context.Background()

	m, err := store.Create(ctx, "Title", "Author", "author@example.com", "editor@example.com", "abstract")
	require.NoError(t, err)
	assert.Equal(t, Submitted, m.State)
	assert.Equal(t, []StateCode{Submitted}, m.History)
	assert.Empty(t, m.Referees)

	got, err := store.Read(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Title, got.Title)
}

func TestCreateBlankTitleRejected(t *testing.T) {
	store := NewStore(db.NewMemoryCollection("manuscripts"))
	_, err := store.Create(context.Background(), "  ", "Author", "a@example.com", "e@example.com", "abstract")
	require.Error(t, err)
}

func TestCreateInvalidEmailRejected(t *testing.T) {
	store := NewStore(db.NewMemoryCollection("manuscripts"))
	_, err := store.Create(context.Background(), "T", "Author", "bad-email", "e@example.com", "abstract")
	require.Error(t, err)
}
