package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal.dev/editorial/db"
	"journal.dev/editorial/people"
)

func newTestAuthenticator() *Authenticator {
	return NewAuthenticator(people.NewStore(db.NewMemoryCollection("people"), nil), 4)
}

func TestRegisterThenLogin(t *testing.T) {
	a := newTestAuthenticator()
	ctx := context.Background()

	p, err := a.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Empty(t, p.PasswordHash)

	logged, err := a.Login(ctx, "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, p.ID, logged.ID)
}

func TestLoginWrongPasswordIndistinguishableFromUnknownUser(t *testing.T) {
	a := newTestAuthenticator()
	ctx := context.Background()

	_, err1 := a.Login(ctx, "nobody@example.com", "whatever")
	require.Error(t, err1)

	_, err := a.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)
	_, err2 := a.Login(ctx, "ada@example.com", "wrong-password")
	require.Error(t, err2)

	assert.Equal(t, err1.Error(), err2.Error())
}
