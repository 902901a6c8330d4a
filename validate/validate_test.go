package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"journal.dev/editorial/errs"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"jane.doe@example.org", true},
		{"j@x.co", true},
		{"bad@", false},
		{".bad@example.com", false},
		{"wayne_ll@nba.edu", true},
		{"wayne-ll@nba.edu", true},
		{"wayne+ll@nba.edu", true},
		{"missing-at-sign.com", false},
		{"short@example.c", false},
		{"long@example.abcdefghijk", false},
	}
	for _, tc := range cases {
		err := Email(tc.email)
		if tc.valid {
			assert.NoError(t, err, tc.email)
		} else {
			assert.Error(t, err, tc.email)
			assert.True(t, errs.Is(err, errs.InvalidArgument))
		}
	}
}

func TestNonBlank(t *testing.T) {
	assert.NoError(t, NonBlank("title", "Hello"))
	assert.Error(t, NonBlank("title", "   "))
	assert.Error(t, NonBlank("title", ""))
}
