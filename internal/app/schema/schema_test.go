package schema

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{
		"name":  "Name is required",
		"email": "Invalid email address",
	}
	assert.Equal(t, "validation failed; email: Invalid email address; name: Name is required", errs.Error())
}

func TestFieldsNilAndEmpty(t *testing.T) {
	assert.Nil(t, Fields(nil))
	assert.Nil(t, Fields(validation.Errors{}))
}

func TestFieldsNonValidationError(t *testing.T) {
	errs := Fields(errors.New("connection reset"))
	require.NotNil(t, errs)
	assert.Equal(t, "connection reset", errs["_record"])
}

func TestFieldsNestedPaths(t *testing.T) {
	verrs := validation.Errors{
		"name": errors.New("Name is required"),
		"qualifications": validation.Errors{
			"0": validation.Errors{
				"degree": errors.New("Degree is required"),
			},
			"2": validation.Errors{
				"college": errors.New("College/University is required"),
			},
		},
	}

	errs := Fields(verrs)
	require.NotNil(t, errs)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Degree is required", errs["qualifications.0.degree"])
	assert.Equal(t, "College/University is required", errs["qualifications.2.college"])
}

func TestAsFieldErrors(t *testing.T) {
	_, ok := AsFieldErrors(nil)
	assert.False(t, ok)

	_, ok = AsFieldErrors(errors.New("boom"))
	assert.False(t, ok)

	fe, ok := AsFieldErrors(FieldErrors{"name": "Name is required"})
	require.True(t, ok)
	assert.Equal(t, "Name is required", fe["name"])

	// wrapped FieldErrors still unwrap
	wrapped := fmt.Errorf("submit: %w", FieldErrors{"title": "Title is required"})
	fe, ok = AsFieldErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Title is required", fe["title"])

	fe, ok = AsFieldErrors(validation.Errors{"email": errors.New("Invalid email address")})
	require.True(t, ok)
	assert.Equal(t, "Invalid email address", fe["email"])
}

func TestValidateBuzz(t *testing.T) {
	_, errs := ValidateBuzz(BuzzDraft{})
	require.NotNil(t, errs)
	assert.Equal(t, "Title is required", errs["title"])
	assert.Equal(t, "Content is required", errs["content"])
	assert.NotContains(t, errs, "imageUrl")

	_, errs = ValidateBuzz(BuzzDraft{Title: "Tech Fest", Content: "Coming soon", ImageURL: "not a url"})
	require.NotNil(t, errs)
	assert.Equal(t, "Image URL must be a valid URL", errs["imageUrl"])

	record, errs := ValidateBuzz(BuzzDraft{Title: "Tech Fest", Content: "Coming soon"})
	require.Nil(t, errs)
	assert.Empty(t, record.ID)
	assert.True(t, record.CreatedAt.IsZero())
	assert.Equal(t, "Tech Fest", record.Title)
}

func TestValidateInquiry(t *testing.T) {
	_, errs := ValidateInquiry(InquiryDraft{Email: "not-an-email"})
	require.NotNil(t, errs)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Invalid email address", errs["email"])
	assert.Equal(t, "Subject is required", errs["subject"])
	assert.Equal(t, "Message is required", errs["message"])

	inquiry, errs := ValidateInquiry(InquiryDraft{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Admissions",
		Message: "When do applications open?",
	})
	require.Nil(t, errs)
	assert.Equal(t, "Admissions", inquiry.Subject)
}
