package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenTTL is the fixed lifetime of an issued access token.
const AccessTokenTTL = 30 * time.Minute

// ErrMalformedToken is returned when a token cannot be decoded or its
// signature does not verify under the current secret.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the payload of an access token: the user's id as subject plus
// the expiry timestamp.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenCodec issues and parses HS256-signed access tokens using a
// process-wide symmetric secret.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a TokenCodec signing with the given secret.
func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

// Issue builds and signs an access token for the given user id, expiring
// AccessTokenTTL from now.
func (c *TokenCodec) Issue(userID uuid.UUID) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(AccessTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Parse decodes and signature-verifies a token string, returning its claims.
// It checks structural well-formedness (subject and expiry present) but not
// expiry itself; expiry is the identity verifier's responsibility.
func (c *TokenCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return nil, ErrMalformedToken
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrMalformedToken
	}

	return claims, nil
}
