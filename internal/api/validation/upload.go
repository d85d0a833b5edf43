package validation

import (
	"path/filepath"
	"strings"
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UploadRequest mirrors the fields needed for upload validation.
type UploadRequest struct {
	Filename          string
	AllowedExtensions []string
}

// ValidateUpload checks that an uploaded file has a name with an accepted
// extension. Extensions compare case-insensitively.
func ValidateUpload(req UploadRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Filename)
	if name == "" {
		errs = append(errs, FieldError{Field: "file", Message: "file name is required"})
	} else if !hasAllowedExtension(name, req.AllowedExtensions) {
		errs = append(errs, FieldError{
			Field:   "file",
			Message: "file must have one of the extensions: " + strings.Join(req.AllowedExtensions, ", "),
		})
	}

	return errs
}

func hasAllowedExtension(name string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		a = strings.ToLower(strings.TrimSpace(a))
		if !strings.HasPrefix(a, ".") {
			a = "." + a
		}
		if ext == a {
			return true
		}
	}
	return false
}
