package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"journal.dev/editorial/errs"
	"journal.dev/editorial/roles"
)

func TestAllowedGrantsEditorialRoles(t *testing.T) {
	assert.True(t, Allowed(ResourceManuscript, "ACC", []roles.Code{roles.Editor}))
	assert.True(t, Allowed(ResourceManuscript, "ACC", []roles.Code{roles.ManagingEditor}))
	assert.False(t, Allowed(ResourceManuscript, "ACC", []roles.Code{roles.Author}))
}

func TestAllowedRefereeOnlySBR(t *testing.T) {
	assert.True(t, Allowed(ResourceManuscript, "SBR", []roles.Code{roles.Referee}))
	assert.False(t, Allowed(ResourceManuscript, "SBR", []roles.Code{roles.Editor}))
}

func TestUnprotectedOperationAlwaysAllowed(t *testing.T) {
	assert.True(t, Allowed(ResourceManuscript, "unlisted_op", nil))
}

func TestCheckUnauthenticatedVsForbidden(t *testing.T) {
	err := Check(ResourcePerson, OpDeletePerson, "", nil)
	assert.True(t, errs.Is(err, errs.Unauthenticated))

	err = Check(ResourcePerson, OpDeletePerson, "p1", []roles.Code{roles.Author})
	assert.True(t, errs.Is(err, errs.Forbidden))

	err = Check(ResourcePerson, OpDeletePerson, "p1", []roles.Code{roles.Editor})
	assert.NoError(t, err)
}

func TestAuthorAndRefereeMatches(t *testing.T) {
	assert.True(t, AuthorMatches("a@example.com", "a@example.com"))
	assert.False(t, AuthorMatches("a@example.com", "b@example.com"))
	assert.True(t, RefereeMatches([]string{"r1", "r2"}, "r2"))
	assert.False(t, RefereeMatches([]string{"r1"}, "r2"))
}
