package text

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal.dev/editorial/db"
	"journal.dev/editorial/errs"
)

func TestCreateDuplicatePageRejected(t *testing.T) {
	s := NewStore(db.NewMemoryCollection("texts"))
	ctx := context.Background()

	_, err := s.Create(ctx, "m1", "1", "Intro", "body text")
	require.NoError(t, err)

	_, err = s.Create(ctx, "m1", "1", "Intro again", "other body")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Conflict))
}

func TestReadByManuscriptSortedLexicographically(t *testing.T) {
	s := NewStore(db.NewMemoryCollection("texts"))
	ctx := context.Background()

	for _, n := range []string{"10", "2", "1"} {
		_, err := s.Create(ctx, "m1", n, "t", "body")
		require.NoError(t, err)
	}

	pages, err := s.ReadByManuscript(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, []string{"1", "10", "2"}, []string{pages[0].PageNumber, pages[1].PageNumber, pages[2].PageNumber})
}

func TestCascadeDeleteRemovesAllPages(t *testing.T) {
	s := NewStore(db.NewMemoryCollection("texts"))
	ctx := context.Background()

	_, err := s.Create(ctx, "m1", "1", "t", "body")
	require.NoError(t, err)
	_, err = s.Create(ctx, "m1", "2", "t", "body")
	require.NoError(t, err)

	require.NoError(t, s.DeleteByManuscript(ctx, "m1"))

	pages, err := s.ReadByManuscript(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestUpdateRequiresExistence(t *testing.T) {
	s := NewStore(db.NewMemoryCollection("texts"))
	_, err := s.Update(context.Background(), "m1", "1", "t", "b")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NotFound))
}
