package comments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal.dev/editorial/db"
)

func TestCreateReadUpdateDelete(t *testing.T) {
	s := NewStore(db.NewMemoryCollection("comments"))
	ctx := context.Background()

	c, err := s.Create(ctx, "m1", "p1", "looks good")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	list, err := s.ReadByManuscript(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := s.Update(ctx, c.ID, "revised comment")
	require.NoError(t, err)
	assert.Equal(t, "revised comment", updated.Text)

	require.NoError(t, s.Delete(ctx, c.ID))

	list, err = s.ReadByManuscript(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateBlankTextRejected(t *testing.T) {
	s := NewStore(db.NewMemoryCollection("comments"))
	_, err := s.Create(context.Background(), "m1", "p1", "   ")
	require.Error(t, err)
}
