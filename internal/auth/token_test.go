package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehub/notehub/internal/auth"
)

var testSecret = []byte("test-secret")

// signedToken builds a raw HS256 token with arbitrary claims for tests that
// need control over subject and expiry.
func signedToken(t *testing.T, secret []byte, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return tokenString
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)
	userID := uuid.New()

	tokenString, err := codec.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := codec.Parse(tokenString)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().UTC().Add(auth.AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenCodec_ParseGarbage(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)

	_, err := codec.Parse("not-a-token")
	assert.ErrorIs(t, err, auth.ErrMalformedToken)
}

func TestTokenCodec_ParseWrongSecret(t *testing.T) {
	other := auth.NewTokenCodec([]byte("different-secret"))
	tokenString, err := other.Issue(uuid.New())
	require.NoError(t, err)

	codec := auth.NewTokenCodec(testSecret)
	_, err = codec.Parse(tokenString)
	assert.ErrorIs(t, err, auth.ErrMalformedToken)
}

func TestTokenCodec_ParseDoesNotCheckExpiry(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)
	expired := signedToken(t, testSecret, uuid.New().String(), time.Now().UTC().Add(-time.Hour))

	claims, err := codec.Parse(expired)
	require.NoError(t, err, "expiry is the identity verifier's job, not the codec's")
	assert.True(t, claims.ExpiresAt.Before(time.Now().UTC()))
}

func TestTokenCodec_ParseMissingSubject(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)
	tokenString := signedToken(t, testSecret, "", time.Now().UTC().Add(time.Hour))

	_, err := codec.Parse(tokenString)
	assert.ErrorIs(t, err, auth.ErrMalformedToken)
}

func TestTokenCodec_ParseMissingExpiry(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)

	claims := jwt.RegisteredClaims{Subject: uuid.New().String()}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = codec.Parse(tokenString)
	assert.ErrorIs(t, err, auth.ErrMalformedToken)
}

func TestTokenCodec_RejectsUnsignedToken(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Parse(tokenString)
	assert.ErrorIs(t, err, auth.ErrMalformedToken)
}
