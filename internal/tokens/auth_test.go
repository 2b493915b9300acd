package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")

	t.Run("valid token", func(t *testing.T) {
		tokenString, err := GenerateUserJWT(42, time.Hour, key)
		require.NoError(t, err)

		claims, err := ValidateUserJWT(tokenString, key)
		require.NoError(t, err)

		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("unique token ids", func(t *testing.T) {
		first, err := GenerateUserJWT(1, time.Hour, key)
		require.NoError(t, err)
		second, err := GenerateUserJWT(1, time.Hour, key)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString, err := GenerateUserJWT(1, -time.Minute, key)
		require.NoError(t, err)

		_, err = ValidateUserJWT(tokenString, key)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong key", func(t *testing.T) {
		tokenString, err := GenerateUserJWT(1, time.Hour, key)
		require.NoError(t, err)

		_, err = ValidateUserJWT(tokenString, []byte("other"))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
		})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ValidateUserJWT(tokenString, key)
		assert.Error(t, err)
	})

	t.Run("bad subject", func(t *testing.T) {
		claims := UserClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
		_, err := claims.UserID()
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
