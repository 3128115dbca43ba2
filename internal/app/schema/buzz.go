package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/meera/campusboard/internal/app/models"
)

// BuzzDraft is the transient state of the buzz editor.
type BuzzDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// Validate checks the buzz draft. ImageURL is optional; when present it must
// be a well-formed URL.
func (d BuzzDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required.Error("Title is required")),
		validation.Field(&d.Content, validation.Required.Error("Content is required")),
		validation.Field(&d.ImageURL, is.URL.Error("Image URL must be a valid URL")),
	)
}

// ValidateBuzz validates a draft and, on success, returns the normalized
// record. Identity and timestamps are assigned by the owning collection.
func ValidateBuzz(d BuzzDraft) (models.Buzz, FieldErrors) {
	if err := d.Validate(); err != nil {
		return models.Buzz{}, Fields(err)
	}

	return models.Buzz{
		Title:    d.Title,
		Content:  d.Content,
		ImageURL: d.ImageURL,
	}, nil
}

// DraftFromBuzz seeds an editable draft from an existing record (edit path).
func DraftFromBuzz(b models.Buzz) BuzzDraft {
	return BuzzDraft{
		Title:    b.Title,
		Content:  b.Content,
		ImageURL: b.ImageURL,
	}
}
