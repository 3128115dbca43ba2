package models

// EmploymentType defines the faculty employment type
type EmploymentType string

const (
	EmploymentRegular  EmploymentType = "Regular"
	EmploymentContract EmploymentType = "Contract"
	EmploymentVisiting EmploymentType = "Visiting"
)

// EmploymentTypes lists every valid employment type in display order.
var EmploymentTypes = []EmploymentType{EmploymentRegular, EmploymentContract, EmploymentVisiting}

// IsValid reports whether the value belongs to the closed employment type set.
func (e EmploymentType) IsValid() bool {
	switch e {
	case EmploymentRegular, EmploymentContract, EmploymentVisiting:
		return true
	}
	return false
}

func (e EmploymentType) String() string {
	return string(e)
}

// Qualification represents one academic qualification of a faculty member.
// The order of qualifications within a faculty record is the user-entry order
// and is preserved through edits.
type Qualification struct {
	Degree         string `json:"degree"`
	PassingYear    string `json:"passingYear"`
	College        string `json:"college"`
	Specialization string `json:"specialization"`
}

// Faculty represents a faculty member record.
// JoiningDate is canonically serialized as YYYY-MM-DD.
type Faculty struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Designation    string          `json:"designation"`
	Department     string          `json:"department"`
	JoiningDate    string          `json:"joiningDate"`
	Experience     string          `json:"experience"`
	EmploymentType EmploymentType  `json:"employmentType"`
	Qualifications []Qualification `json:"qualifications"`
	Avatar         string          `json:"avatar,omitempty"`
}
