package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/schema"
)

func TestNewBuzzFormDefaults(t *testing.T) {
	f := NewBuzzForm()

	assert.True(t, f.Open())
	assert.Empty(t, f.EditingID())
	assert.Equal(t, schema.BuzzDraft{}, f.Draft())
}

func TestEditBuzzFormSeedsFromRecord(t *testing.T) {
	f := EditBuzzForm(models.Buzz{
		ID:       "b-1",
		Title:    "Tech Fest 2026",
		Content:  "Registrations open next week.",
		ImageURL: "https://example.edu/fest.png",
	})

	assert.Equal(t, "b-1", f.EditingID())
	assert.Equal(t, "Tech Fest 2026", f.Draft().Title)
	assert.Equal(t, "https://example.edu/fest.png", f.Draft().ImageURL)
}

func TestBuzzFormSubmitValidationFailure(t *testing.T) {
	f := NewBuzzForm()
	f.Apply(schema.BuzzDraft{Title: "Tech Fest"})

	delivered := 0
	err := f.Submit(func(models.Buzz) error {
		delivered++
		return nil
	})

	require.Error(t, err)
	fieldErrs, ok := schema.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Content is required", fieldErrs["content"])
	assert.Zero(t, delivered)
	assert.True(t, f.Open())
}

func TestBuzzFormSubmitSuccess(t *testing.T) {
	f := NewBuzzForm()
	f.Apply(schema.BuzzDraft{Title: "Tech Fest", Content: "Coming soon"})

	var payloads []models.Buzz
	err := f.Submit(func(p models.Buzz) error {
		payloads = append(payloads, p)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t, "Tech Fest", payloads[0].Title)
	assert.False(t, f.Open())

	err = f.Submit(func(models.Buzz) error { return nil })
	assert.ErrorIs(t, err, ErrFormClosed)
}

func TestBuzzFormSubmitDeliverFailureKeepsFormOpen(t *testing.T) {
	f := NewBuzzForm()
	f.Apply(schema.BuzzDraft{Title: "Tech Fest", Content: "Coming soon"})

	deliverErr := errors.New("store unavailable")
	err := f.Submit(func(models.Buzz) error { return deliverErr })

	assert.ErrorIs(t, err, deliverErr)
	assert.True(t, f.Open())
	assert.Equal(t, "Tech Fest", f.Draft().Title)
}

func TestBuzzFormCancel(t *testing.T) {
	f := EditBuzzForm(models.Buzz{ID: "b-1", Title: "Tech Fest", Content: "Coming soon"})
	f.Cancel()

	assert.False(t, f.Open())
	assert.Equal(t, schema.BuzzDraft{}, f.Draft())
}
