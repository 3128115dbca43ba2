package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/meera/campusboard/internal/app/models"
)

// InquiryDraft holds the raw contact form input prior to validation.
type InquiryDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (d InquiryDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("Name is required")),
		validation.Field(&d.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Invalid email address"),
		),
		validation.Field(&d.Subject, validation.Required.Error("Subject is required")),
		validation.Field(&d.Message, validation.Required.Error("Message is required")),
	)
}

// ValidateInquiry validates a draft and materializes the inquiry payload.
// Timestamps and identifier are assigned by the caller.
func ValidateInquiry(d InquiryDraft) (models.Inquiry, FieldErrors) {
	if err := d.Validate(); err != nil {
		return models.Inquiry{}, Fields(err)
	}

	return models.Inquiry{
		Name:    d.Name,
		Email:   d.Email,
		Subject: d.Subject,
		Message: d.Message,
	}, nil
}
