package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notehub/notehub/internal/oauth"
)

// ErrInvalidCredentials is returned for any credential failure: unknown
// email, wrong password, or an unknown or unverifiable Google subject. The
// causes are deliberately not distinguished to prevent account enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailInUse is returned when registering with an email that already
// belongs to a user.
var ErrEmailInUse = errors.New("email already in use")

// ErrUnauthenticated is returned for any access token problem: malformed,
// mis-signed, expired, or an unresolvable subject. All branches are
// indistinguishable to the caller.
var ErrUnauthenticated = errors.New("could not validate credentials")

// ErrGoogleAuthDisabled is returned when a Google flow is invoked but no
// OAuth client ID is configured. It is independent of the credentials
// supplied.
var ErrGoogleAuthDisabled = errors.New("google oauth2 not enabled")

// Service provides credential verification, registration, token issuance,
// and token resolution. The Google verifier may be nil, which disables both
// Google entry points.
type Service struct {
	repo   Repository
	hasher *PasswordHasher
	codec  *TokenCodec
	google oauth.Verifier
}

// NewService creates a new auth Service.
func NewService(repo Repository, hasher *PasswordHasher, codec *TokenCodec, google oauth.Verifier) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		codec:  codec,
		google: google,
	}
}

// AuthenticatePassword verifies an email/password pair and returns the user.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *Service) AuthenticatePassword(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}

	if user.PasswordHash == nil || !s.hasher.Verify(password, *user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// RegisterPassword creates a new password-flow user. It fails with
// ErrEmailInUse if any user, from either flow, already holds the email.
func (s *Service) RegisterPassword(ctx context.Context, email, password string) (*User, error) {
	// Rate limiting, CAPTCHA, and generic conflict messaging would harden
	// this endpoint against enumeration; the distinct conflict status is an
	// accepted tradeoff.
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: &hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// AuthenticateGoogle verifies the Google-issued ID token and returns the
// matching user. It does not auto-provision; an unknown subject yields
// ErrInvalidCredentials.
func (s *Service) AuthenticateGoogle(ctx context.Context, rawIDToken string) (*User, error) {
	identity, err := s.verifyGoogleToken(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByGoogleID(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding user by google id: %w", err)
	}

	return user, nil
}

// RegisterGoogle verifies the Google-issued ID token and provisions a user
// for its subject if none exists yet. The operation is idempotent: repeated
// calls for the same subject return the same user, including when concurrent
// registrations race on the storage uniqueness constraint.
func (s *Service) RegisterGoogle(ctx context.Context, rawIDToken string) (*User, error) {
	identity, err := s.verifyGoogleToken(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByGoogleID(ctx, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("finding user by google id: %w", err)
	}

	googleID := identity.Subject
	user = &User{
		ID:       uuid.New(),
		Email:    identity.Email,
		GoogleID: &googleID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateGoogleID) {
			// Lost a provisioning race for the same subject; the winner's
			// record is the one to return.
			return s.repo.GetByGoogleID(ctx, identity.Subject)
		}
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("creating google user: %w", err)
	}

	return user, nil
}

// IssueToken returns a signed access token for the given user.
func (s *Service) IssueToken(user *User) (string, error) {
	return s.codec.Issue(user.ID)
}

// Resolve validates a presented access token and returns the user it asserts.
// Parse failures, expiry, unknown subjects, and disabled accounts all yield
// the same ErrUnauthenticated.
func (s *Service) Resolve(ctx context.Context, tokenString string) (*User, error) {
	claims, err := s.codec.Parse(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if !claims.ExpiresAt.After(time.Now().UTC()) {
		return nil, ErrUnauthenticated
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("finding user by id: %w", err)
	}

	if user.IsDisabled {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

// verifyGoogleToken guards the Google flows: the configuration check runs
// before anything else, and token verification runs before any store access.
func (s *Service) verifyGoogleToken(ctx context.Context, rawIDToken string) (*oauth.Identity, error) {
	if s.google == nil {
		return nil, ErrGoogleAuthDisabled
	}

	identity, err := s.google.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return identity, nil
}
