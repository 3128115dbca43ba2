package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/campusboard/internal/app/models"
)

func filterFixtures() []models.Faculty {
	return []models.Faculty{
		{ID: "f-1", Name: "Dr. Anjali Sharma", Designation: "Professor", Department: "CSE", EmploymentType: models.EmploymentRegular},
		{ID: "f-2", Name: "Prof. Rajesh Kumar", Designation: "Associate Professor", Department: "ECE", EmploymentType: models.EmploymentRegular},
		{ID: "f-3", Name: "Dr. Meena Iyer", Designation: "Assistant Professor", Department: "CSE", EmploymentType: models.EmploymentContract},
		{ID: "f-4", Name: "Prof. Suresh Nair", Designation: "Visiting Faculty", Department: "Mathematics", EmploymentType: models.EmploymentVisiting},
	}
}

func ids(items []models.Faculty) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFilterEmptyMatchesEverything(t *testing.T) {
	var f FacultyFilter
	assert.False(t, f.Active())
	assert.Equal(t, []string{"f-1", "f-2", "f-3", "f-4"}, ids(f.Apply(filterFixtures())))
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	f := FacultyFilter{Search: "csE"}
	assert.True(t, f.Active())
	assert.Equal(t, []string{"f-1", "f-3"}, ids(f.Apply(filterFixtures())))

	// search also covers name and designation
	f = FacultyFilter{Search: "sharma"}
	assert.Equal(t, []string{"f-1"}, ids(f.Apply(filterFixtures())))

	f = FacultyFilter{Search: "ASSOCIATE"}
	assert.Equal(t, []string{"f-2"}, ids(f.Apply(filterFixtures())))

	f = FacultyFilter{Search: "zzz"}
	assert.Empty(t, f.Apply(filterFixtures()))
}

func TestFilterDepartmentIsExactMatch(t *testing.T) {
	f := FacultyFilter{Department: "CSE"}
	assert.Equal(t, []string{"f-1", "f-3"}, ids(f.Apply(filterFixtures())))

	f = FacultyFilter{Department: "cse"}
	assert.Empty(t, f.Apply(filterFixtures()))
}

func TestFilterCriteriaCombineWithAnd(t *testing.T) {
	f := FacultyFilter{
		Search:         "dr.",
		Department:     "CSE",
		EmploymentType: models.EmploymentContract,
	}
	assert.Equal(t, []string{"f-3"}, ids(f.Apply(filterFixtures())))
}

func TestFilterApplyPreservesSourceOrder(t *testing.T) {
	f := FacultyFilter{EmploymentType: models.EmploymentRegular}
	assert.Equal(t, []string{"f-1", "f-2"}, ids(f.Apply(filterFixtures())))
}

func TestFilterReset(t *testing.T) {
	f := FacultyFilter{Search: "dr", Department: "CSE", EmploymentType: models.EmploymentRegular}
	require.True(t, f.Active())

	f.Reset()
	assert.False(t, f.Active())
	assert.Equal(t, FacultyFilter{}, f)
}

func TestDepartmentsDistinctAndSorted(t *testing.T) {
	got := Departments(filterFixtures())
	assert.Equal(t, []string{"CSE", "ECE", "Mathematics"}, got)

	assert.Empty(t, Departments(nil))
}
