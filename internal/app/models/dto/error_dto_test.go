package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/campusboard/internal/app/schema"
)

func TestFromFieldErrorsSortedByFieldPath(t *testing.T) {
	v := FromFieldErrors(schema.FieldErrors{
		"qualifications.0.degree": "Degree is required",
		"name":                    "Name is required",
		"designation":             "Designation is required",
	})

	require.True(t, v.HasErrors())
	require.Len(t, v.Errors, 3)

	assert.Equal(t, "designation", v.Errors[0].Field)
	assert.Equal(t, "name", v.Errors[1].Field)
	assert.Equal(t, "qualifications.0.degree", v.Errors[2].Field)

	for _, e := range v.Errors {
		assert.Equal(t, ErrorCodeValidationFailed, e.Code)
		assert.Equal(t, ErrorSeverityError, e.Severity)
	}
	assert.Equal(t, "Name is required", v.Errors[1].Message)
}

func TestFromFieldErrorsEmpty(t *testing.T) {
	v := FromFieldErrors(nil)
	assert.False(t, v.HasErrors())
	assert.NotNil(t, v.Errors)
}

func TestErrorDetailBuilders(t *testing.T) {
	d := NewErrorDetail(ErrorCodeResourceNotFound, "Faculty member not found").
		WithField("id").
		WithSeverity(ErrorSeverityWarning)

	assert.Equal(t, ErrorCodeResourceNotFound, d.Code)
	assert.Equal(t, "id", d.Field)
	assert.Equal(t, ErrorSeverityWarning, d.Severity)

	resp := NewErrorResponse(d)
	assert.False(t, resp.Success)
	assert.Equal(t, d, resp.Error)
	assert.False(t, resp.Timestamp.IsZero())
}
