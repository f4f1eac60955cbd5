package validation

import "strings"

// NoteRequest mirrors the fields needed for note create and update validation.
type NoteRequest struct {
	Title   string
	Content string
}

// ValidateNoteRequest validates the fields of a note create or update request.
func ValidateNoteRequest(req NoteRequest) []FieldError {
	var errs []FieldError

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(title) > 255 {
		errs = append(errs, FieldError{Field: "title", Message: "title must be at most 255 characters"})
	}

	if len(req.Content) > 65536 {
		errs = append(errs, FieldError{Field: "content", Message: "content must be at most 65536 characters"})
	}

	return errs
}
