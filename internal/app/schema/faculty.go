package schema

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/meera/campusboard/internal/app/models"
)

// minJoiningDate is the earliest accepted joining date.
var minJoiningDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

func employmentTypeValues() []interface{} {
	values := make([]interface{}, len(models.EmploymentTypes))
	for i, t := range models.EmploymentTypes {
		values[i] = string(t)
	}
	return values
}

// QualificationDraft is one in-progress qualification row of the faculty form.
type QualificationDraft struct {
	Degree         string `json:"degree"`
	PassingYear    string `json:"passingYear"`
	College        string `json:"college"`
	Specialization string `json:"specialization"`
}

// Validate checks a single qualification row. PassingYear is stored as text
// and must be exactly 4 characters; no numeric range is enforced.
func (d QualificationDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Degree, validation.Required.Error("Degree is required")),
		validation.Field(&d.PassingYear,
			validation.Required.Error("Valid passing year is required"),
			validation.Length(4, 4).Error("Valid passing year is required"),
		),
		validation.Field(&d.College, validation.Required.Error("College/University is required")),
		validation.Field(&d.Specialization, validation.Required.Error("Area of specialization is required")),
	)
}

// FacultyDraft is the transient, unpersisted state of the faculty editor.
type FacultyDraft struct {
	Name           string               `json:"name"`
	Designation    string               `json:"designation"`
	Department     string               `json:"department"`
	JoiningDate    string               `json:"joiningDate"`
	Experience     string               `json:"experience"`
	EmploymentType string               `json:"employmentType"`
	Qualifications []QualificationDraft `json:"qualifications"`
	Avatar         string               `json:"avatar"`
}

// Validate checks the faculty draft, reporting every violated field at once.
// Qualification rows are validated independently; their errors are keyed by
// row index under the qualifications field.
func (d FacultyDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("Name is required")),
		validation.Field(&d.Designation, validation.Required.Error("Designation is required")),
		validation.Field(&d.Department, validation.Required.Error("Department is required")),
		validation.Field(&d.JoiningDate,
			validation.Required.Error("Joining date is required"),
			validation.Date(DateLayout).Error("Joining date must be a valid YYYY-MM-DD date").
				Min(minJoiningDate).Max(time.Now()).
				RangeError("Joining date must be between 1900-01-01 and today"),
		),
		validation.Field(&d.Experience, validation.Required.Error("Experience is required")),
		validation.Field(&d.EmploymentType,
			validation.Required.Error("Employment type is required"),
			validation.In(employmentTypeValues()...).
				Error("Employment type must be one of Regular, Contract or Visiting"),
		),
		validation.Field(&d.Qualifications,
			validation.Required.Error("At least one qualification is required"),
		),
		validation.Field(&d.Avatar, is.URL.Error("Avatar must be a valid URL")),
	)
}

// ValidateFaculty validates a draft and, on success, returns the normalized
// faculty record (without an identifier; identity is assigned by the owning
// collection). On failure it returns the per-field errors.
func ValidateFaculty(d FacultyDraft) (models.Faculty, FieldErrors) {
	if err := d.Validate(); err != nil {
		return models.Faculty{}, Fields(err)
	}

	qualifications := make([]models.Qualification, len(d.Qualifications))
	for i, q := range d.Qualifications {
		qualifications[i] = models.Qualification{
			Degree:         q.Degree,
			PassingYear:    q.PassingYear,
			College:        q.College,
			Specialization: q.Specialization,
		}
	}

	return models.Faculty{
		Name:           d.Name,
		Designation:    d.Designation,
		Department:     d.Department,
		JoiningDate:    d.JoiningDate,
		Experience:     d.Experience,
		EmploymentType: models.EmploymentType(d.EmploymentType),
		Qualifications: qualifications,
		Avatar:         d.Avatar,
	}, nil
}

// DraftFromFaculty seeds an editable draft from an existing record (edit path).
func DraftFromFaculty(f models.Faculty) FacultyDraft {
	qualifications := make([]QualificationDraft, len(f.Qualifications))
	for i, q := range f.Qualifications {
		qualifications[i] = QualificationDraft{
			Degree:         q.Degree,
			PassingYear:    q.PassingYear,
			College:        q.College,
			Specialization: q.Specialization,
		}
	}

	return FacultyDraft{
		Name:           f.Name,
		Designation:    f.Designation,
		Department:     f.Department,
		JoiningDate:    f.JoiningDate,
		Experience:     f.Experience,
		EmploymentType: string(f.EmploymentType),
		Qualifications: qualifications,
		Avatar:         f.Avatar,
	}
}

// FormatJoiningDate serializes a picked calendar date for the draft. An unset
// date serializes to the empty string, never to a placeholder date.
func FormatJoiningDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
