package pkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParsePair(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	pair, err := tm.GeneratePair(42)
	require.NoError(t, err)

	claims, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)

	// Refresh tokens do not parse as access tokens.
	_, err = tm.ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	pair, err := tm.GeneratePair(7)
	require.NoError(t, err)

	fresh, err := tm.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	claims, err := tm.ParseAccess(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)

	_, err = tm.Refresh(pair.AccessToken)
	assert.Error(t, err)
	_, err = tm.Refresh("not-a-token")
	assert.Error(t, err)
}

func TestParseExpiredAccessToken(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Subject:   "access",
		},
	})
	signed, err := expired.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = tm.ParseAccess(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")
	other := NewTokenManager("different", "different")

	pair, err := other.GeneratePair(1)
	require.NoError(t, err)

	_, err = tm.ParseAccess(pair.AccessToken)
	assert.Error(t, err)
}
