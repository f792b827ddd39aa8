package middleware

import (
	"testing"
	"wandervoice/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "somchai",
		UserID:   userID,
		Role:     role,
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestValidateJWTRoundTrip(t *testing.T) {
	signed := signToken(t, globals.JwtSecret, "u1", "user")

	claims, err := ValidateJWT(signed)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWTAcceptsBearerPrefix(t *testing.T) {
	signed := signToken(t, globals.JwtSecret, "u1", "user")

	claims, err := ValidateJWT("Bearer " + signed)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestValidateJWTRejectsBadSignature(t *testing.T) {
	signed := signToken(t, []byte("some-other-secret"), "u1", "user")

	_, err := ValidateJWT(signed)

	assert.Error(t, err)
}

func TestValidateJWTRejectsEmptyToken(t *testing.T) {
	for _, tok := range []string{"", "Bearer ", "garbage"} {
		_, err := ValidateJWT(tok)
		assert.Error(t, err, "token: %q", tok)
	}
}
