package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"content-dashboard/internal/domain"
)

var validStatus = []interface{}{string(domain.StatusPublished), string(domain.StatusDraft)}

// EditForm is the edit-modal submission for an article: all three editable
// fields together.
type EditForm struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// LoginForm is the login submission.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validator provides validation methods for user-submitted forms.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEditForm validates an article edit submission. Errors come back as
// field-level messages; submission must be blocked while any are present.
func (v *Validator) ValidateEditForm(f *EditForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("title_required"),
			validation.Length(3, 100).Error("title_length_3_to_100"),
		),
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
			validation.Length(10, 0).Error("content_min_10"),
		),
		validation.Field(&f.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	)
}

// ValidateLoginForm validates a login submission. Credential correctness is
// not checked here; this is only the data-entry boundary.
func (v *Validator) ValidateLoginForm(f *LoginForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// FieldErrors converts a validation error into a field-to-message map for
// API responses. A non-validation error maps to a single "form" entry.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			fields[field] = fieldErr.Error()
		}
		return fields
	}
	fields["form"] = err.Error()
	return fields
}
