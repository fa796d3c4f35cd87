package middleware

import (
	"testing"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyTokenPair(t *testing.T) {
	access, refresh, err := GenerateTokenPair(42, domain.KindHospital)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := VerifyJWT(access)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.PrincipalID)
	assert.Equal(t, domain.KindHospital, claims.Kind)
	assert.Equal(t, tokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenResolvesPrincipal(t *testing.T) {
	_, refresh, err := GenerateTokenPair(7, domain.KindDonor)
	require.NoError(t, err)

	principal, err := VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, 7, principal.ID)
	assert.Equal(t, domain.KindDonor, principal.Kind)
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	access, _, err := GenerateTokenPair(7, domain.KindDonor)
	require.NoError(t, err)

	_, err = VerifyRefreshToken(access)
	require.Error(t, err)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	_, err := VerifyJWT("not-a-token")
	require.Error(t, err)
}

// The signing key is read from the environment on every use, so a key that
// only becomes available after package init (dotenv load) still takes
// effect, and a rotated key invalidates earlier tokens.
func TestSigningKeyReadPerUse(t *testing.T) {
	t.Setenv("BYTE_KEY", "first-key")
	access, _, err := GenerateTokenPair(9, domain.KindDonor)
	require.NoError(t, err)

	_, err = VerifyJWT(access)
	require.NoError(t, err)

	t.Setenv("BYTE_KEY", "second-key")
	_, err = VerifyJWT(access)
	require.Error(t, err)
}
