package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	anon := Anonymous()
	assert.False(t, anon.IsAuthenticated())
	assert.Zero(t, anon.UserID())
	assert.False(t, anon.Owns(Post{AuthorID: 0}))

	alice := Authenticated(User{ID: 7, Username: "alice"})
	assert.True(t, alice.IsAuthenticated())
	assert.Equal(t, int64(7), alice.UserID())
	assert.True(t, alice.Owns(Post{AuthorID: 7}))
	assert.False(t, alice.Owns(Post{AuthorID: 8}))
}

func TestErrorTaxonomy(t *testing.T) {
	err := fmt.Errorf("register: %w", NewValidationError("username", "Username is required."))

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "username", verr.Field)
	assert.Equal(t, "Username is required.", err.Error()[len("register: "):])

	var aerr *AuthenticationError
	assert.True(t, errors.As(ErrIncorrectPassword, &aerr))
	assert.Equal(t, "Incorrect password.", aerr.Message)
	assert.True(t, errors.Is(fmt.Errorf("login: %w", ErrIncorrectUsername), ErrIncorrectUsername))
}
