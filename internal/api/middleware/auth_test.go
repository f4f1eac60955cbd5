package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehub/notehub/internal/api/middleware"
	"github.com/notehub/notehub/internal/auth"
)

const testBcryptCost = 4

func setupAuthService(t *testing.T) *auth.Service {
	t.Helper()

	repo := auth.NewMemoryRepository()
	hasher := auth.NewPasswordHasher(testBcryptCost)
	codec := auth.NewTokenCodec([]byte("test-secret"))
	return auth.NewService(repo, hasher, codec, nil)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err)
	return env
}

func assertUnauthenticated(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	env := parseErrorResponse(t, w)
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "UNAUTHENTICATED", apiErr["code"])
	assert.Equal(t, "Could not validate credentials", apiErr["message"])
}

func TestAuth_MissingHeader(t *testing.T) {
	svc := setupAuthService(t)

	handler := middleware.Auth(svc)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assertUnauthenticated(t, w)
}

func TestAuth_NotBearerScheme(t *testing.T) {
	svc := setupAuthService(t)

	handler := middleware.Auth(svc)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assertUnauthenticated(t, w)
}

func TestAuth_InvalidToken(t *testing.T) {
	svc := setupAuthService(t)

	handler := middleware.Auth(svc)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assertUnauthenticated(t, w)
}

func TestAuth_ValidToken(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	user, err := svc.RegisterPassword(ctx, "test@email.com", "password")
	require.NoError(t, err)

	tokenString, err := svc.IssueToken(user)
	require.NoError(t, err)

	var seen *auth.User
	handler := middleware.Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen, "handler should receive the resolved user")
	assert.Equal(t, user.ID, seen.ID)
}

func TestGetUser_MissingFromContext(t *testing.T) {
	assert.Nil(t, middleware.GetUser(context.Background()))
}
