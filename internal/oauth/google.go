package oauth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

const googleIssuer = "https://accounts.google.com"

// Identity is the subset of a verified Google ID token the service needs.
type Identity struct {
	Subject string
	Email   string
}

// Verifier checks a provider-issued ID token (signature, audience, expiry)
// against the provider's public verification keys and extracts the asserted
// identity.
type Verifier interface {
	Verify(ctx context.Context, rawIDToken string) (*Identity, error)
}

// GoogleVerifier implements Verifier for Google ID tokens via OIDC discovery.
type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewGoogleVerifier creates a GoogleVerifier that accepts tokens issued to
// the given OAuth client ID.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("creating oidc provider: %w", err)
	}

	return &GoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// Verify validates the raw ID token and returns the Google subject and email.
func (g *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (*Identity, error) {
	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("verifying id token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("reading id token claims: %w", err)
	}

	return &Identity{Subject: idToken.Subject, Email: claims.Email}, nil
}
