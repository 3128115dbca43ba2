// Package collection owns the canonical in-memory record collections of the
// dashboard session and the filtering over them. Coordinators are the single
// writers of their collection; forms and views only read or propose data.
package collection

import (
	"sort"
	"strings"

	"github.com/meera/campusboard/internal/app/models"
)

// FacultyFilter captures the three independent filter criteria of the faculty
// list. An empty criterion imposes no restriction; active criteria combine
// with logical AND.
type FacultyFilter struct {
	// Search matches case-insensitively as a substring of name, designation
	// or department.
	Search string
	// Department matches exactly against one department value.
	Department string
	// EmploymentType matches exactly against one of the closed enum values.
	EmploymentType models.EmploymentType
}

// Active reports whether any criterion is set.
func (f FacultyFilter) Active() bool {
	return f.Search != "" || f.Department != "" || f.EmploymentType != ""
}

// Reset clears every criterion in one step.
func (f *FacultyFilter) Reset() {
	*f = FacultyFilter{}
}

// Matches reports whether the record satisfies every active criterion.
func (f FacultyFilter) Matches(faculty models.Faculty) bool {
	if f.Department != "" && faculty.Department != f.Department {
		return false
	}

	if f.EmploymentType != "" && faculty.EmploymentType != f.EmploymentType {
		return false
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(faculty.Name), term) &&
			!strings.Contains(strings.ToLower(faculty.Designation), term) &&
			!strings.Contains(strings.ToLower(faculty.Department), term) {
			return false
		}
	}

	return true
}

// Apply returns the subset of items satisfying the filter, preserving the
// source collection's relative order.
func (f FacultyFilter) Apply(items []models.Faculty) []models.Faculty {
	visible := make([]models.Faculty, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Departments derives the distinct department values present in the
// collection, sorted lexicographically.
func Departments(items []models.Faculty) []string {
	seen := make(map[string]struct{}, len(items))
	departments := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Department]; ok {
			continue
		}
		seen[item.Department] = struct{}{}
		departments = append(departments, item.Department)
	}
	sort.Strings(departments)
	return departments
}
