package authutils

import (
	"testing"
	"time"

	"childminder-backend/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)
	require.True(t, CheckPassword(hash, "correct horse"))
	require.False(t, CheckPassword(hash, "wrong"))
}

func TestGetToken(t *testing.T) {
	token, expiresAt, err := GetToken("secret", time.Hour, "u1", "Olivia Grant", models.UserRoleOfficer)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.Equal(t, "u1", claims["sub"])
	require.Equal(t, "Olivia Grant", claims["name"])
	require.Equal(t, string(models.UserRoleOfficer), claims["role"])
}
