// Package auth is the authentication collaborator spec.md §1 treats as an
// external dependency: username/email-and-password registration and login
// against the person store, with bcrypt-hashed credentials (security
// package) instead of the source's verbatim password storage (spec.md §9).
package auth

import (
	"context"

	"journal.dev/editorial/errs"
	"journal.dev/editorial/people"
	"journal.dev/editorial/roles"
	"journal.dev/editorial/security"
)

// Authenticator registers and authenticates persons, hashing and verifying
// their plaintext passwords through the security package.
type Authenticator struct {
	people     *people.Store
	bcryptCost int
}

// NewAuthenticator builds an Authenticator over the given person store.
// bcryptCost is taken from config.StoreConfig so it can be lowered in
// tests without touching production defaults.
func NewAuthenticator(peopleStore *people.Store, bcryptCost int) *Authenticator {
	return &Authenticator{people: peopleStore, bcryptCost: bcryptCost}
}

// Register creates a new person with a login credential. New registrants
// default to the Author role; editorial roles are granted later via
// people.Store.AddRole by an existing editor.
func (a *Authenticator) Register(ctx context.Context, name, email, password string) (*people.Person, error) {
	if password == "" {
		return nil, errs.New(errs.InvalidArgument, "password is required")
	}
	hash, err := security.HashPasswordWithCost(password, a.bcryptCost)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "hash password", err)
	}
	p, err := a.people.Create(ctx, &people.Person{
		Name:         name,
		Email:        email,
		Roles:        []roles.Code{roles.Author},
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}
	p.PasswordHash = ""
	return p, nil
}

// Login verifies email/password and returns the matching person on
// success. Per spec.md §7, failure is Unauthenticated regardless of
// whether the email was unknown or the password was wrong, so the two
// cases are indistinguishable to the caller.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*people.Person, error) {
	p, err := a.people.Read(ctx, people.ByEmail(email))
	if err != nil {
		return nil, errs.New(errs.Unauthenticated, "invalid email or password")
	}
	if err := security.VerifyPassword(p.PasswordHash, password); err != nil {
		return nil, errs.New(errs.Unauthenticated, "invalid email or password")
	}
	p.PasswordHash = ""
	return p, nil
}
