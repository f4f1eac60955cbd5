package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/notehub/notehub/internal/api/middleware"
	"github.com/notehub/notehub/internal/api/response"
	"github.com/notehub/notehub/internal/api/validation"
	"github.com/notehub/notehub/internal/auth"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleTokenRequest struct {
	IDToken string `json:"idToken"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// AuthHandler handles sign-in and registration endpoints for both flows.
type AuthHandler struct {
	service *auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignIn handles POST /auth/token.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeCredentials(w, r, requestID)
	if !ok {
		return
	}

	user, err := h.service.AuthenticatePassword(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Err(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password", requestID)
			return
		}
		slog.Error("password sign-in failed", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Sign-in failed", requestID)
		return
	}

	h.issueToken(w, user, requestID)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeCredentials(w, r, requestID)
	if !ok {
		return
	}

	user, err := h.service.RegisterPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailInUse) {
			response.Err(w, http.StatusConflict, "EMAIL_IN_USE", "Email already in use", requestID)
			return
		}
		slog.Error("registration failed", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Registration failed", requestID)
		return
	}

	h.issueToken(w, user, requestID)
}

// SignInGoogle handles POST /auth/token/google.
func (h *AuthHandler) SignInGoogle(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeGoogleToken(w, r, requestID)
	if !ok {
		return
	}

	user, err := h.service.AuthenticateGoogle(r.Context(), req.IDToken)
	if err != nil {
		h.writeGoogleError(w, err, requestID)
		return
	}

	h.issueToken(w, user, requestID)
}

// RegisterGoogle handles POST /auth/register/google.
func (h *AuthHandler) RegisterGoogle(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	req, ok := h.decodeGoogleToken(w, r, requestID)
	if !ok {
		return
	}

	user, err := h.service.RegisterGoogle(r.Context(), req.IDToken)
	if err != nil {
		h.writeGoogleError(w, err, requestID)
		return
	}

	h.issueToken(w, user, requestID)
}

func (h *AuthHandler) decodeCredentials(w http.ResponseWriter, r *http.Request, requestID string) (credentialsRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return credentialsRequest{}, false
	}

	fieldErrors := validation.ValidateCredentialsRequest(validation.CredentialsRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return credentialsRequest{}, false
	}

	return req, true
}

func (h *AuthHandler) decodeGoogleToken(w http.ResponseWriter, r *http.Request, requestID string) (googleTokenRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req googleTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return googleTokenRequest{}, false
	}

	fieldErrors := validation.ValidateGoogleTokenRequest(validation.GoogleTokenRequest{
		IDToken: req.IDToken,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return googleTokenRequest{}, false
	}

	return req, true
}

func (h *AuthHandler) writeGoogleError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, auth.ErrGoogleAuthDisabled):
		response.Err(w, http.StatusTeapot, "GOOGLE_AUTH_DISABLED", "Google OAuth2 not enabled", requestID)
	case errors.Is(err, auth.ErrInvalidCredentials):
		response.Err(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Could not validate credentials", requestID)
	case errors.Is(err, auth.ErrEmailInUse):
		response.Err(w, http.StatusConflict, "EMAIL_IN_USE", "Email already in use", requestID)
	default:
		slog.Error("google auth failed", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Sign-in failed", requestID)
	}
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, user *auth.User, requestID string) {
	token, err := h.service.IssueToken(user)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", requestID)
		return
	}

	response.Success(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, requestID)
}
