package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator decides whether a set of admin credentials is valid. It is an
// interface so the header-credential scheme can later be swapped for a signed
// token without touching the handlers.
type Authenticator interface {
	Authenticate(email, password string) bool
}

// CredentialAuthenticator checks credentials against the single configured
// admin identity. The configured password may be a bcrypt hash; plain values
// are compared in constant time.
type CredentialAuthenticator struct {
	Email    string
	Password string
}

func (a CredentialAuthenticator) Authenticate(email, password string) bool {
	if subtle.ConstantTimeCompare([]byte(email), []byte(a.Email)) != 1 {
		return false
	}
	if isBcryptHash(a.Password) {
		return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// AdminAuth guards admin routes. Credentials travel in the email and
// password request headers and are checked against the configured identity.
func AdminAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Get("email")
		password := c.Get("password")

		if !auth.Authenticate(email, password) {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized access")
		}
		return c.Next()
	}
}
