package validation

import "strings"

// CredentialsRequest mirrors the fields needed for sign-in and registration
// validation.
type CredentialsRequest struct {
	Email    string
	Password string
}

// ValidateCredentialsRequest validates the fields of a sign-in or
// registration request.
func ValidateCredentialsRequest(req CredentialsRequest) []FieldError {
	var errs []FieldError

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if len(email) > 255 {
		errs = append(errs, FieldError{Field: "email", Message: "email must be at most 255 characters"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}

	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	} else if len(req.Password) > 72 {
		// bcrypt truncates input beyond 72 bytes
		errs = append(errs, FieldError{Field: "password", Message: "password must be at most 72 characters"})
	}

	return errs
}

// GoogleTokenRequest mirrors the fields needed for Google flow validation.
type GoogleTokenRequest struct {
	IDToken string
}

// ValidateGoogleTokenRequest validates the fields of a Google sign-in or
// registration request.
func ValidateGoogleTokenRequest(req GoogleTokenRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.IDToken) == "" {
		errs = append(errs, FieldError{Field: "idToken", Message: "idToken is required"})
	}

	return errs
}
