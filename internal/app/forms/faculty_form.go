package forms

import (
	"errors"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/schema"
)

// Form lifecycle errors
var (
	// ErrFormClosed is returned when submitting a form that is no longer open.
	ErrFormClosed = errors.New("form is closed")
	// ErrSubmissionInProgress is returned when a submission is already being
	// handed off; it prevents duplicate submissions.
	ErrSubmissionInProgress = errors.New("submission already in progress")
)

// FacultyForm is the modal editing session for one faculty draft. It owns the
// transient draft only; it never mutates the canonical collection. On a
// successful submit it emits exactly one validated payload to its caller.
type FacultyForm struct {
	editingID  string
	draft      schema.FacultyDraft
	rows       *FieldList
	fieldErrs  schema.FieldErrors
	open       bool
	submitting bool
}

// NewFacultyForm opens the form for the add path: one empty qualification row
// already present, employment type defaulted to Regular, all other fields
// empty.
func NewFacultyForm() *FacultyForm {
	f := &FacultyForm{
		draft: schema.FacultyDraft{
			EmploymentType: string(models.EmploymentRegular),
		},
		rows: NewFieldList(),
		open: true,
	}
	f.rows.Append(schema.QualificationDraft{})
	return f
}

// EditFacultyForm opens the form for the edit path, seeded from the target
// record. Every qualification receives a list-identity key; keys are never
// part of the persisted payload.
func EditFacultyForm(target models.Faculty) *FacultyForm {
	draft := schema.DraftFromFaculty(target)

	f := &FacultyForm{
		editingID: target.ID,
		draft:     draft,
		rows:      NewFieldList(),
		open:      true,
	}
	for _, q := range draft.Qualifications {
		f.rows.Append(q)
	}
	return f
}

// Open reports whether the dialog is still open.
func (f *FacultyForm) Open() bool {
	return f.open
}

// EditingID returns the identifier of the record being edited, or "" on the
// add path.
func (f *FacultyForm) EditingID() string {
	return f.editingID
}

// Qualifications exposes the nested field-list controller.
func (f *FacultyForm) Qualifications() *FieldList {
	return f.rows
}

// Errors returns the field errors recorded by the last failed submit.
func (f *FacultyForm) Errors() schema.FieldErrors {
	return f.fieldErrs
}

// Draft returns the current draft state, qualification rows included.
func (f *FacultyForm) Draft() schema.FacultyDraft {
	d := f.draft
	d.Qualifications = f.rows.Drafts()
	return d
}

// Apply replaces the draft's field values with the incoming ones. Existing
// qualification rows keep their list-identity keys; the row list is resized
// through the field-list controller so removed rows never leak keys back.
func (f *FacultyForm) Apply(d schema.FacultyDraft) {
	incoming := d.Qualifications
	d.Qualifications = nil
	f.draft = d

	for f.rows.Len() > len(incoming) {
		f.rows.Remove(f.rows.Len() - 1)
	}
	for f.rows.Len() < len(incoming) {
		f.rows.Append(schema.QualificationDraft{})
	}
	for i, q := range incoming {
		f.rows.Set(i, q)
	}
}

// Submit validates the current draft and, on success, hands exactly one
// validated payload to deliver. While the hand-off runs the form is marked
// submitting, which blocks duplicate submissions. On validation failure no
// side effect occurs, the field errors are retained and the dialog stays
// open. A deliver failure also keeps the dialog open with the draft intact.
func (f *FacultyForm) Submit(deliver func(models.Faculty) error) error {
	if !f.open {
		return ErrFormClosed
	}
	if f.submitting {
		return ErrSubmissionInProgress
	}

	payload, errs := schema.ValidateFaculty(f.Draft())
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

// Cancel closes the dialog and discards the draft entirely. The canonical
// collection is untouched.
func (f *FacultyForm) Cancel() {
	f.open = false
	f.draft = schema.FacultyDraft{}
	f.rows = NewFieldList()
	f.fieldErrs = nil
}
