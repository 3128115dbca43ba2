package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/pkg/apperrors"
)

// stubFacultyStore records mutations and fails on demand.
type stubFacultyStore struct {
	initial []models.Faculty
	err     error

	created []models.Faculty
	updated []models.Faculty
	deleted []string
}

func (s *stubFacultyStore) GetAll(context.Context) ([]models.Faculty, error) {
	return s.initial, nil
}

func (s *stubFacultyStore) Create(_ context.Context, f models.Faculty) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, f)
	return nil
}

func (s *stubFacultyStore) Update(_ context.Context, f models.Faculty) error {
	if s.err != nil {
		return s.err
	}
	s.updated = append(s.updated, f)
	return nil
}

func (s *stubFacultyStore) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type notification struct {
	title       string
	description string
}

// recordingNotifier captures every acknowledgment raised by a coordinator.
type recordingNotifier struct {
	notifications []notification
}

func (n *recordingNotifier) Notify(title, description string) {
	n.notifications = append(n.notifications, notification{title, description})
}

func newFacultyCoordinator(t *testing.T, store *stubFacultyStore) (*FacultyCoordinator, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	c, err := NewFacultyCoordinator(context.Background(), store, notifier)
	require.NoError(t, err)
	return c, notifier
}

func facultyFixture(id, name string) models.Faculty {
	return models.Faculty{
		ID:             id,
		Name:           name,
		Designation:    "Professor",
		Department:     "CSE",
		JoiningDate:    "2012-06-01",
		Experience:     "12 years",
		EmploymentType: models.EmploymentRegular,
		Qualifications: []models.Qualification{
			{Degree: "Ph.D.", PassingYear: "2010", College: "IIT Delhi", Specialization: "Databases"},
		},
	}
}

func TestFacultyCoordinatorLoadFailure(t *testing.T) {
	notifier := &recordingNotifier{}
	_, err := NewFacultyCoordinator(context.Background(), &failingFacultyStore{}, notifier)
	require.Error(t, err)
}

type failingFacultyStore struct{ stubFacultyStore }

func (s *failingFacultyStore) GetAll(context.Context) ([]models.Faculty, error) {
	return nil, errors.New("connection refused")
}

func TestFacultyCoordinatorCreate(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{
		facultyFixture("f-1", "Dr. Anjali Sharma"),
		facultyFixture("f-2", "Prof. Rajesh Kumar"),
	}}
	c, notifier := newFacultyCoordinator(t, store)

	created, err := c.Create(context.Background(), facultyFixture("", "Dr. Meena Iyer"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// the persisted payload carries the generated identifier
	require.Len(t, store.created, 1)
	assert.Equal(t, created.ID, store.created[0].ID)

	// collection is re-sorted by name ascending
	items := c.List(FacultyFilter{})
	require.Len(t, items, 3)
	assert.Equal(t, "Dr. Anjali Sharma", items[0].Name)
	assert.Equal(t, "Dr. Meena Iyer", items[1].Name)
	assert.Equal(t, "Prof. Rajesh Kumar", items[2].Name)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Faculty Added", notifier.notifications[0].title)
	assert.Equal(t, "Dr. Meena Iyer has been successfully added.", notifier.notifications[0].description)
}

func TestFacultyCoordinatorCreateStoreFailure(t *testing.T) {
	store := &stubFacultyStore{
		initial: []models.Faculty{facultyFixture("f-1", "Dr. Anjali Sharma")},
		err:     errors.New("insert failed"),
	}
	c, notifier := newFacultyCoordinator(t, store)

	_, err := c.Create(context.Background(), facultyFixture("", "Dr. Meena Iyer"))
	require.Error(t, err)

	// store-first: the local collection is untouched and nothing is announced
	assert.Len(t, c.List(FacultyFilter{}), 1)
	assert.Empty(t, notifier.notifications)
}

func TestFacultyCoordinatorUpdate(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{
		facultyFixture("f-1", "Dr. Anjali Sharma"),
		facultyFixture("f-2", "Prof. Rajesh Kumar"),
	}}
	c, notifier := newFacultyCoordinator(t, store)

	payload := facultyFixture("", "Prof. Rajesh Kumar")
	payload.Department = "EEE"
	updated, err := c.Update(context.Background(), "f-2", payload)
	require.NoError(t, err)

	assert.Equal(t, "f-2", updated.ID)
	assert.Equal(t, "EEE", updated.Department)

	// position in the collection is preserved
	items := c.List(FacultyFilter{})
	assert.Equalf(t, "f-2", items[1].ID, "updated record moved")

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Faculty Updated", notifier.notifications[0].title)
}

func TestFacultyCoordinatorUpdateUnknownID(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{facultyFixture("f-1", "Dr. Anjali Sharma")}}
	c, _ := newFacultyCoordinator(t, store)

	_, err := c.Update(context.Background(), "missing", facultyFixture("", "Nobody"))
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	assert.Empty(t, store.updated)
}

func TestFacultyCoordinatorGet(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{facultyFixture("f-1", "Dr. Anjali Sharma")}}
	c, _ := newFacultyCoordinator(t, store)

	got, err := c.Get("f-1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Anjali Sharma", got.Name)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestFacultyCoordinatorDeleteFlow(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{
		facultyFixture("f-1", "Dr. Anjali Sharma"),
		facultyFixture("f-2", "Prof. Rajesh Kumar"),
	}}
	c, notifier := newFacultyCoordinator(t, store)

	require.NoError(t, c.RequestDelete("f-1"))
	require.NoError(t, c.ConfirmDelete(context.Background(), "f-1"))

	assert.Equal(t, []string{"f-1"}, store.deleted)
	items := c.List(FacultyFilter{})
	require.Len(t, items, 1)
	assert.Equal(t, "f-2", items[0].ID)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Faculty Deleted", notifier.notifications[0].title)
}

func TestFacultyCoordinatorCancelDelete(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{facultyFixture("f-1", "Dr. Anjali Sharma")}}
	c, notifier := newFacultyCoordinator(t, store)

	require.NoError(t, c.RequestDelete("f-1"))
	c.CancelDelete()

	// the request is dropped; confirming afterwards has nothing to act on
	err := c.ConfirmDelete(context.Background(), "f-1")
	assert.ErrorIs(t, err, apperrors.ErrNoPendingDelete)

	assert.Len(t, c.List(FacultyFilter{}), 1)
	assert.Empty(t, store.deleted)
	assert.Empty(t, notifier.notifications)
}

func TestFacultyCoordinatorConfirmDeleteSupersededRequest(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{
		facultyFixture("f-1", "Dr. Anjali Sharma"),
		facultyFixture("f-2", "Prof. Rajesh Kumar"),
	}}
	c, notifier := newFacultyCoordinator(t, store)

	// a second request lands between the first request and its confirmation
	require.NoError(t, c.RequestDelete("f-1"))
	require.NoError(t, c.RequestDelete("f-2"))

	// confirming the first request must not destroy the second's target
	err := c.ConfirmDelete(context.Background(), "f-1")
	assert.ErrorIs(t, err, apperrors.ErrNoPendingDelete)
	assert.Empty(t, store.deleted)
	assert.Len(t, c.List(FacultyFilter{}), 2)
	assert.Empty(t, notifier.notifications)

	// the second request is still confirmable
	require.NoError(t, c.ConfirmDelete(context.Background(), "f-2"))
	assert.Equal(t, []string{"f-2"}, store.deleted)
	assert.Len(t, c.List(FacultyFilter{}), 1)
}

func TestFacultyCoordinatorRequestDeleteUnknownID(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{facultyFixture("f-1", "Dr. Anjali Sharma")}}
	c, _ := newFacultyCoordinator(t, store)

	assert.ErrorIs(t, c.RequestDelete("missing"), apperrors.ErrFacultyNotFound)
}

func TestFacultyCoordinatorConfirmDeleteStoreFailure(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{facultyFixture("f-1", "Dr. Anjali Sharma")}}
	c, notifier := newFacultyCoordinator(t, store)

	require.NoError(t, c.RequestDelete("f-1"))
	store.err = errors.New("delete failed")

	err := c.ConfirmDelete(context.Background(), "f-1")
	require.Error(t, err)

	assert.Len(t, c.List(FacultyFilter{}), 1)
	assert.Empty(t, notifier.notifications)
}

func TestFacultyCoordinatorListAppliesFilter(t *testing.T) {
	store := &stubFacultyStore{initial: []models.Faculty{
		facultyFixture("f-1", "Dr. Anjali Sharma"),
		facultyFixture("f-2", "Prof. Rajesh Kumar"),
	}}
	c, _ := newFacultyCoordinator(t, store)

	items := c.List(FacultyFilter{Search: "rajesh"})
	require.Len(t, items, 1)
	assert.Equal(t, "f-2", items[0].ID)
}

func TestFacultyCoordinatorDepartments(t *testing.T) {
	a := facultyFixture("f-1", "Dr. Anjali Sharma")
	b := facultyFixture("f-2", "Prof. Rajesh Kumar")
	b.Department = "ECE"
	store := &stubFacultyStore{initial: []models.Faculty{b, a}}
	c, _ := newFacultyCoordinator(t, store)

	assert.Equal(t, []string{"CSE", "ECE"}, c.Departments())
}
