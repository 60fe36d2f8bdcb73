package usertoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "testsecret123"
	testUserID   = int64(42)
	testUserName = "mluksch1"
)

func TestGenerate(t *testing.T) {
	tokenString, err := Generate(testUserID, testUserName, time.Hour, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
}

func TestValidate(t *testing.T) {
	// Valid token
	tokenString, err := Generate(testUserID, testUserName, time.Hour, testSecret)
	require.NoError(t, err)

	err = Validate(tokenString, testSecret)
	require.NoError(t, err)

	// Invalid token
	err = Validate("invalidtoken", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Token with incorrect secret
	invalidSecret := "invalidsecret321"
	tokenString, err = Generate(testUserID, testUserName, time.Hour, testSecret)
	require.NoError(t, err)

	err = Validate(tokenString, invalidSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	tokenString, err := Generate(testUserID, testUserName, -time.Hour, testSecret)
	require.NoError(t, err)

	err = Validate(tokenString, testSecret)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestGetClaim(t *testing.T) {
	// Valid claim retrieval
	tokenString, err := Generate(testUserID, testUserName, time.Hour, testSecret)
	require.NoError(t, err)

	userName, err := GetClaim[string](tokenString, testSecret, ClaimUserNameKey)
	require.NoError(t, err)
	require.Equal(t, testUserName, userName)

	userID, err := GetClaim[float64](tokenString, testSecret, ClaimUserIDKey)
	require.NoError(t, err)
	require.Equal(t, float64(testUserID), userID)

	// Token with incorrect secret
	invalidSecret := "invalidsecret321"
	_, err = GetClaim[string](tokenString, invalidSecret, ClaimUserNameKey)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Missing claim
	_, err = GetClaim[string](tokenString, testSecret, "nonexistentclaim")
	require.ErrorIs(t, err, ErrInvalidToken)
}
