package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-42")
	require.NoError(t, err)

	_, err = ValidateToken([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = ValidateToken(testSecret, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserIDFromHeaders(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-42")
	require.NoError(t, err)

	userID, err := UserIDFromHeaders(testSecret, map[string]string{"Authorization": "Bearer " + token})
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)

	// API Gateway may lowercase header names.
	userID, err = UserIDFromHeaders(testSecret, map[string]string{"authorization": "Bearer " + token})
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestUserIDFromHeadersRejectsMalformed(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-42")
	require.NoError(t, err)

	cases := map[string]map[string]string{
		"missing header": {},
		"no scheme":      {"Authorization": token},
		"wrong scheme":   {"Authorization": "Basic " + token},
		"empty value":    {"Authorization": ""},
	}
	for name, headers := range cases {
		_, err := UserIDFromHeaders(testSecret, headers)
		assert.ErrorIs(t, err, ErrUnauthorized, name)
	}
}
