package dto

import "github.com/meera/campusboard/internal/app/models"

// FacultyListResponse wraps a filtered faculty listing
type FacultyListResponse struct {
	Faculties []models.Faculty `json:"faculties"`
	Total     int              `json:"total" example:"6"`
}

// DepartmentListResponse carries the distinct departments present in the collection
type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}

// FacultyFilterRequest captures the listing query parameters
type FacultyFilterRequest struct {
	Search         string `form:"search"`
	Department     string `form:"department"`
	EmploymentType string `form:"employmentType"`
}
