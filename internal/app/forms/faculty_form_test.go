package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/schema"
)

func validDraft() schema.FacultyDraft {
	return schema.FacultyDraft{
		Name:           "Dr. Anjali Sharma",
		Designation:    "Professor",
		Department:     "CSE",
		JoiningDate:    "2010-07-15",
		Experience:     "15 years",
		EmploymentType: "Regular",
		Qualifications: []schema.QualificationDraft{
			{Degree: "Ph.D.", PassingYear: "2008", College: "IIT Delhi", Specialization: "Machine Learning"},
		},
	}
}

func sampleFaculty() models.Faculty {
	return models.Faculty{
		ID:             "f-1",
		Name:           "Prof. Rajesh Kumar",
		Designation:    "Associate Professor",
		Department:     "ECE",
		JoiningDate:    "2015-01-10",
		Experience:     "10 years",
		EmploymentType: models.EmploymentRegular,
		Qualifications: []models.Qualification{
			{Degree: "M.Tech", PassingYear: "2004", College: "NIT Trichy", Specialization: "VLSI"},
			{Degree: "Ph.D.", PassingYear: "2012", College: "IIT Madras", Specialization: "Signal Processing"},
		},
	}
}

func TestNewFacultyFormDefaults(t *testing.T) {
	f := NewFacultyForm()

	assert.True(t, f.Open())
	assert.Empty(t, f.EditingID())
	assert.Nil(t, f.Errors())

	draft := f.Draft()
	assert.Equal(t, "Regular", draft.EmploymentType)
	assert.Empty(t, draft.Name)
	require.Len(t, draft.Qualifications, 1)
	assert.Equal(t, schema.QualificationDraft{}, draft.Qualifications[0])
	assert.Equal(t, []uint64{1}, f.Qualifications().Keys())
}

func TestEditFacultyFormSeedsFromRecord(t *testing.T) {
	target := sampleFaculty()
	f := EditFacultyForm(target)

	assert.True(t, f.Open())
	assert.Equal(t, "f-1", f.EditingID())

	draft := f.Draft()
	assert.Equal(t, target.Name, draft.Name)
	require.Len(t, draft.Qualifications, 2)
	assert.Equal(t, "M.Tech", draft.Qualifications[0].Degree)
	assert.Equal(t, []uint64{1, 2}, f.Qualifications().Keys())
}

func TestFacultyFormApplyPreservesSurvivingKeys(t *testing.T) {
	f := EditFacultyForm(sampleFaculty())
	require.Equal(t, []uint64{1, 2}, f.Qualifications().Keys())

	// shrink to one row: the first key survives, the removed one never returns
	d := validDraft()
	f.Apply(d)
	assert.Equal(t, []uint64{1}, f.Qualifications().Keys())
	assert.Equal(t, "Ph.D.", f.Draft().Qualifications[0].Degree)

	// grow back: the extra row gets a fresh key
	d.Qualifications = append(d.Qualifications,
		schema.QualificationDraft{Degree: "M.Phil.", PassingYear: "2005", College: "DU", Specialization: "Statistics"})
	f.Apply(d)
	assert.Equal(t, []uint64{1, 3}, f.Qualifications().Keys())
}

func TestFacultyFormSubmitValidationFailure(t *testing.T) {
	f := NewFacultyForm()

	delivered := 0
	err := f.Submit(func(models.Faculty) error {
		delivered++
		return nil
	})

	require.Error(t, err)
	fieldErrs, ok := schema.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Name is required", fieldErrs["name"])

	assert.Zero(t, delivered)
	assert.True(t, f.Open())
	assert.Equal(t, fieldErrs, f.Errors())
}

func TestFacultyFormSubmitSuccess(t *testing.T) {
	f := NewFacultyForm()
	f.Apply(validDraft())

	var payloads []models.Faculty
	err := f.Submit(func(p models.Faculty) error {
		payloads = append(payloads, p)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t, "Dr. Anjali Sharma", payloads[0].Name)
	assert.Equal(t, models.EmploymentRegular, payloads[0].EmploymentType)
	assert.False(t, f.Open())
	assert.Nil(t, f.Errors())

	err = f.Submit(func(models.Faculty) error { return nil })
	assert.ErrorIs(t, err, ErrFormClosed)
}

func TestFacultyFormSubmitDeliverFailureKeepsFormOpen(t *testing.T) {
	f := NewFacultyForm()
	f.Apply(validDraft())

	deliverErr := errors.New("store unavailable")
	err := f.Submit(func(models.Faculty) error { return deliverErr })

	assert.ErrorIs(t, err, deliverErr)
	assert.True(t, f.Open())
	assert.Equal(t, "Dr. Anjali Sharma", f.Draft().Name)

	// the draft survives, so a retry can succeed
	err = f.Submit(func(models.Faculty) error { return nil })
	require.NoError(t, err)
	assert.False(t, f.Open())
}

func TestFacultyFormSubmitBlocksReentrantSubmission(t *testing.T) {
	f := NewFacultyForm()
	f.Apply(validDraft())

	var inner error
	err := f.Submit(func(models.Faculty) error {
		inner = f.Submit(func(models.Faculty) error { return nil })
		return nil
	})

	require.NoError(t, err)
	assert.ErrorIs(t, inner, ErrSubmissionInProgress)
}

func TestFacultyFormCancel(t *testing.T) {
	f := EditFacultyForm(sampleFaculty())
	f.Cancel()

	assert.False(t, f.Open())
	assert.Empty(t, f.Draft().Name)
	assert.Zero(t, f.Qualifications().Len())
	assert.Nil(t, f.Errors())
}
