package collection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/pkg/apperrors"
)

type stubBuzzStore struct {
	initial []models.Buzz
	err     error

	created []models.Buzz
	updated []models.Buzz
	deleted []string
}

func (s *stubBuzzStore) GetAll(context.Context) ([]models.Buzz, error) {
	return s.initial, nil
}

func (s *stubBuzzStore) Create(_ context.Context, b models.Buzz) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, b)
	return nil
}

func (s *stubBuzzStore) Update(_ context.Context, b models.Buzz) error {
	if s.err != nil {
		return s.err
	}
	s.updated = append(s.updated, b)
	return nil
}

func (s *stubBuzzStore) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newBuzzCoordinator(t *testing.T, store *stubBuzzStore, now time.Time) (*BuzzCoordinator, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	c, err := NewBuzzCoordinator(context.Background(), store, notifier)
	require.NoError(t, err)
	c.now = func() time.Time { return now }
	return c, notifier
}

func TestBuzzCoordinatorCreateStampsTimestampsAndPrepends(t *testing.T) {
	created := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
	store := &stubBuzzStore{initial: []models.Buzz{
		{ID: "b-1", Title: "Old Announcement", CreatedAt: created.Add(-48 * time.Hour)},
	}}
	now := time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	c, notifier := newBuzzCoordinator(t, store, now)

	item, err := c.Create(context.Background(), models.Buzz{Title: "Tech Fest", Content: "Coming soon"})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, now, item.CreatedAt)
	assert.Equal(t, now, item.UpdatedAt)

	items := c.List()
	require.Len(t, items, 2)
	assert.Equal(t, "Tech Fest", items[0].Title)
	assert.Equal(t, "b-1", items[1].ID)

	require.Len(t, store.created, 1)
	assert.Equal(t, item.ID, store.created[0].ID)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Buzz Item Added", notifier.notifications[0].title)
	assert.Equal(t, `"Tech Fest" has been successfully added.`, notifier.notifications[0].description)
}

func TestBuzzCoordinatorUpdatePreservesCreatedAt(t *testing.T) {
	created := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
	store := &stubBuzzStore{initial: []models.Buzz{
		{ID: "b-1", Title: "Tech Fest", Content: "Coming soon", CreatedAt: created, UpdatedAt: created},
	}}
	now := time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	c, notifier := newBuzzCoordinator(t, store, now)

	updated, err := c.Update(context.Background(), "b-1", models.Buzz{Title: "Tech Fest 2026", Content: "Dates announced"})
	require.NoError(t, err)

	assert.Equal(t, "b-1", updated.ID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, now, updated.UpdatedAt)
	assert.Equal(t, "Tech Fest 2026", updated.Title)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Buzz Item Updated", notifier.notifications[0].title)
}

func TestBuzzCoordinatorUpdateUnknownID(t *testing.T) {
	store := &stubBuzzStore{}
	c, _ := newBuzzCoordinator(t, store, time.Now())

	_, err := c.Update(context.Background(), "missing", models.Buzz{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, apperrors.ErrBuzzNotFound)
}

func TestBuzzCoordinatorCreateStoreFailure(t *testing.T) {
	store := &stubBuzzStore{err: errors.New("insert failed")}
	c, notifier := newBuzzCoordinator(t, store, time.Now())

	_, err := c.Create(context.Background(), models.Buzz{Title: "Tech Fest", Content: "Coming soon"})
	require.Error(t, err)

	assert.Empty(t, c.List())
	assert.Empty(t, notifier.notifications)
}

func TestBuzzCoordinatorDeleteFlow(t *testing.T) {
	store := &stubBuzzStore{initial: []models.Buzz{
		{ID: "b-1", Title: "Tech Fest"},
		{ID: "b-2", Title: "Sports Day"},
	}}
	c, notifier := newBuzzCoordinator(t, store, time.Now())

	require.NoError(t, c.RequestDelete("b-2"))
	require.NoError(t, c.ConfirmDelete(context.Background(), "b-2"))

	assert.Equal(t, []string{"b-2"}, store.deleted)
	items := c.List()
	require.Len(t, items, 1)
	assert.Equal(t, "b-1", items[0].ID)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Buzz Item Deleted", notifier.notifications[0].title)
}

func TestBuzzCoordinatorCancelDelete(t *testing.T) {
	store := &stubBuzzStore{initial: []models.Buzz{{ID: "b-1", Title: "Tech Fest"}}}
	c, notifier := newBuzzCoordinator(t, store, time.Now())

	require.NoError(t, c.RequestDelete("b-1"))
	c.CancelDelete()

	assert.ErrorIs(t, c.ConfirmDelete(context.Background(), "b-1"), apperrors.ErrNoPendingDelete)
	assert.Len(t, c.List(), 1)
	assert.Empty(t, notifier.notifications)
}

func TestBuzzCoordinatorConfirmDeleteSupersededRequest(t *testing.T) {
	store := &stubBuzzStore{initial: []models.Buzz{
		{ID: "b-1", Title: "Tech Fest"},
		{ID: "b-2", Title: "Sports Day"},
	}}
	c, notifier := newBuzzCoordinator(t, store, time.Now())

	require.NoError(t, c.RequestDelete("b-1"))
	require.NoError(t, c.RequestDelete("b-2"))

	assert.ErrorIs(t, c.ConfirmDelete(context.Background(), "b-1"), apperrors.ErrNoPendingDelete)
	assert.Empty(t, store.deleted)
	assert.Len(t, c.List(), 2)
	assert.Empty(t, notifier.notifications)
}

func TestBuzzCoordinatorListReturnsCopy(t *testing.T) {
	store := &stubBuzzStore{initial: []models.Buzz{{ID: "b-1", Title: "Tech Fest"}}}
	c, _ := newBuzzCoordinator(t, store, time.Now())

	items := c.List()
	items[0].Title = "mutated"

	assert.Equal(t, "Tech Fest", c.List()[0].Title)
}
