package forms

import (
	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/schema"
)

// BuzzForm is the modal editing session for one buzz draft. It mirrors the
// faculty form without the nested field-list.
type BuzzForm struct {
	editingID  string
	draft      schema.BuzzDraft
	fieldErrs  schema.FieldErrors
	open       bool
	submitting bool
}

// NewBuzzForm opens the form for the add path with an empty draft.
func NewBuzzForm() *BuzzForm {
	return &BuzzForm{open: true}
}

// EditBuzzForm opens the form seeded from the target record.
func EditBuzzForm(target models.Buzz) *BuzzForm {
	return &BuzzForm{
		editingID: target.ID,
		draft:     schema.DraftFromBuzz(target),
		open:      true,
	}
}

// Open reports whether the dialog is still open.
func (f *BuzzForm) Open() bool {
	return f.open
}

// EditingID returns the identifier of the record being edited, or "" on the
// add path.
func (f *BuzzForm) EditingID() string {
	return f.editingID
}

// Errors returns the field errors recorded by the last failed submit.
func (f *BuzzForm) Errors() schema.FieldErrors {
	return f.fieldErrs
}

// Draft returns the current draft state.
func (f *BuzzForm) Draft() schema.BuzzDraft {
	return f.draft
}

// Apply replaces the draft's field values with the incoming ones.
func (f *BuzzForm) Apply(d schema.BuzzDraft) {
	f.draft = d
}

// Submit validates the draft and, on success, hands exactly one validated
// payload to deliver. Semantics match FacultyForm.Submit.
func (f *BuzzForm) Submit(deliver func(models.Buzz) error) error {
	if !f.open {
		return ErrFormClosed
	}
	if f.submitting {
		return ErrSubmissionInProgress
	}

	payload, errs := schema.ValidateBuzz(f.draft)
	if errs != nil {
		f.fieldErrs = errs
		return errs
	}
	f.fieldErrs = nil

	f.submitting = true
	defer func() { f.submitting = false }()

	if err := deliver(payload); err != nil {
		return err
	}

	f.open = false
	return nil
}

// Cancel closes the dialog and discards the draft entirely.
func (f *BuzzForm) Cancel() {
	f.open = false
	f.draft = schema.BuzzDraft{}
	f.fieldErrs = nil
}
