package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, "user-123", "employer", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "employer", claims.Role)
}

func TestVerifyTokenIdempotent(t *testing.T) {
	token, err := IssueToken(testSecret, "user-123", "jobseeker", time.Hour)
	require.NoError(t, err)

	first, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	second, err := VerifyToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, first.Subject, second.Subject)
	assert.Equal(t, first.Role, second.Role)
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := IssueToken(testSecret, "user-123", "jobseeker", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenExpiryBoundary(t *testing.T) {
	// exp == iat: by the time verification runs, now >= exp, and a token at
	// exactly its expiry instant counts as expired.
	token, err := IssueToken(testSecret, "user-123", "jobseeker", 0)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "user-123", "jobseeker", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token, "some-other-secret")
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := VerifyToken(input, testSecret)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", input)
	}
}
