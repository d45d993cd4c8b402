package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialAuthenticatorPlainPassword(t *testing.T) {
	auth := CredentialAuthenticator{Email: "admin@example.com", Password: "s3cret"}

	assert.True(t, auth.Authenticate("admin@example.com", "s3cret"))
	assert.False(t, auth.Authenticate("admin@example.com", "wrong"))
	assert.False(t, auth.Authenticate("other@example.com", "s3cret"))
	assert.False(t, auth.Authenticate("", ""))
}

func TestCredentialAuthenticatorBcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := CredentialAuthenticator{Email: "admin@example.com", Password: string(hash)}

	assert.True(t, auth.Authenticate("admin@example.com", "s3cret"))
	assert.False(t, auth.Authenticate("admin@example.com", "wrong"))
	// The hash itself is not a valid password.
	assert.False(t, auth.Authenticate("admin@example.com", string(hash)))
}
