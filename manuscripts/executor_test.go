package manuscripts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal.dev/editorial/db"
	"journal.dev/editorial/errs"
)

func newTestExecutor() (*Executor, *Store) {
	store := NewStore(db.NewMemoryCollection("manuscripts"))
	return NewExecutor(store, nil), store
}

func mustCreate(t *testing.T, store *Store) *Manuscript {
	t.Helper()
	m, err := store.Create(context.Background(), "T", "A", "author@example.com", "editor@example.com", "abstract text")
	require.NoError(t, err)
	return m
}

func TestHappyPathPublication(t *testing.T) {
	exec, store := newTestExecutor()
	ctx := context.Background()
	m := mustCreate(t, store)

	m, err := exec.Transition(ctx, m.ID, AssignReferee, "r1")
	require.NoError(t, err)
	assert.Equal(t, InRefereeReview, m.State)

	m, err = exec.Transition(ctx, m.ID, Accept, "")
	require.NoError(t, err)
	assert.Equal(t, CopyEdit, m.State)

	m, err = exec.Transition(ctx, m.ID, Done, "")
	require.NoError(t, err)
	assert.Equal(t, AuthorReview, m.State)

	m, err = exec.Transition(ctx, m.ID, Done, "")
	require.NoError(t, err)
	assert.Equal(t, Formatting, m.State)

	m, err = exec.Transition(ctx, m.ID, Done, "")
	require.NoError(t, err)
	assert.Equal(t, Published, m.State)

	assert.Equal(t, []StateCode{Submitted, InRefereeReview, CopyEdit, AuthorReview, Formatting, Published}, m.History)
}

func TestRevisionRoundTrip(t *testing.T) {
	exec, store := newTestExecutor()
	ctx := context.Background()
	m := mustCreate(t, store)

	m, err := exec.Transition(ctx, m.ID, AssignReferee, "r1")
	require.NoError(t, err)

	m, err = exec.Transition(ctx, m.ID, AcceptWithRevisions, "")
	require.NoError(t, err)
	assert.Equal(t, AuthorRevision, m.State)

	m, err = exec.Transition(ctx, m.ID, Done, "")
	require.NoError(t, err)
	assert.Equal(t, EditorReview, m.State)

	m, err = exec.Transition(ctx, m.ID, Accept, "")
	require.NoError(t, err)
	assert.Equal(t, CopyEdit, m.State)
}

func TestRefereeBounce(t *testing.T) {
	exec, store := newTestExecutor()
	ctx := context.Background()
	m := mustCreate(t, store)

	m, err := exec.Transition(ctx, m.ID, AssignReferee, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, m.Referees)

	m, err = exec.Transition(ctx, m.ID, AssignReferee, "r2")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, m.Referees)

	m, err = exec.Transition(ctx, m.ID, DeleteReferee, "r1")
	require.NoError(t, err)
	assert.Equal(t, InRefereeReview, m.State)
	assert.Equal(t, []string{"r2"}, m.Referees)

	m, err = exec.Transition(ctx, m.ID, DeleteReferee, "r2")
	require.NoError(t, err)
	assert.Equal(t, Submitted, m.State)
	assert.Empty(t, m.Referees)
}

func TestIllegalActionLeavesManuscriptUnchanged(t *testing.T) {
	exec, store := newTestExecutor()
	ctx := context.Background()
	m := mustCreate(t, store)

	_, err := exec.Transition(ctx, m.ID, Accept, "")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidArgument))

	reloaded, err := store.Read(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, Submitted, reloaded.State)
	assert.Equal(t, []StateCode{Submitted}, reloaded.History)
}

func TestWithdrawFromPublishedThenTerminal(t *testing.T) {
	exec, store := newTestExecutor()
	ctx := context.Background()
	m := mustCreate(t, store)

	m, err := exec.Transition(ctx, m.ID, AssignReferee, "r1")
	require.NoError(t, err)
	m, err = exec.Transition(ctx, m.ID, Accept, "")
	require.NoError(t, err)
	m, err = exec.Transition(ctx, m.ID, Done, "")
	require.NoError(t, err)
	m, err = exec.Transition(ctx, m.ID, Done, "")
	require.NoError(t, err)
	m, err = exec.Transition(ctx, m.ID, Done, "")
	require.NoError(t, err)
	require.Equal(t, Published, m.State)

	m, err = exec.Transition(ctx, m.ID, Withdraw, "")
	require.NoError(t, err)
	assert.Equal(t, Withdrawn, m.State)

	_, err = exec.Transition(ctx, m.ID, Withdraw, "")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestTransitionOnNonexistentManuscriptReturnsNotFound(t *testing.T) {
	exec, _ := newTestExecutor()
	_, err := exec.Transition(context.Background(), "no-such-id", Accept, "")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.NotFound))
}
