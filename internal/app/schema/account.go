package schema

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ProfileDraft is the transient state of the admin profile editor.
type ProfileDraft struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Validate checks the profile draft.
func (d ProfileDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("Name is required")),
		validation.Field(&d.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Invalid email address"),
		),
		validation.Field(&d.Avatar, is.URL.Error("Avatar must be a valid URL")),
	)
}

// ChangePasswordDraft is the transient state of the password change form.
type ChangePasswordDraft struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks the password change draft. The match rule spans two fields
// and its failure is attached to confirmPassword specifically, not to the
// record as a whole.
func (d ChangePasswordDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.CurrentPassword,
			validation.Required.Error("Current password is required"),
			validation.Length(6, 0).Error("Current password must be at least 6 characters"),
		),
		validation.Field(&d.NewPassword,
			validation.Required.Error("New password is required"),
			validation.Length(6, 0).Error("New password must be at least 6 characters"),
		),
		validation.Field(&d.ConfirmPassword,
			validation.Required.Error("Confirm password is required"),
			validation.Length(6, 0).Error("Confirm password must be at least 6 characters"),
			validation.By(d.matchesNewPassword),
		),
	)
}

func (d ChangePasswordDraft) matchesNewPassword(value interface{}) error {
	confirm, _ := value.(string)
	if confirm != d.NewPassword {
		return errors.New("New passwords don't match")
	}
	return nil
}

// ValidateChangePassword validates the draft, reporting every violated field.
func ValidateChangePassword(d ChangePasswordDraft) FieldErrors {
	return Fields(d.Validate())
}

// ValidateProfile validates the draft, reporting every violated field.
func ValidateProfile(d ProfileDraft) FieldErrors {
	return Fields(d.Validate())
}
