package collection

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/pkg/apperrors"
)

// FacultyStore is the narrow interface the coordinator consumes to persist
// mutations. Retries, timeouts and caching belong to the implementation, not
// to the coordinator.
type FacultyStore interface {
	GetAll(ctx context.Context) ([]models.Faculty, error)
	Create(ctx context.Context, faculty models.Faculty) error
	Update(ctx context.Context, faculty models.Faculty) error
	Delete(ctx context.Context, id string) error
}

// FacultyCoordinator is the single source of truth for the canonical faculty
// collection within the session. All mutations run store-first: a store
// failure leaves the local collection untouched. The mutex serializes
// mutations so each one fully completes before the next is processed.
type FacultyCoordinator struct {
	store    FacultyStore
	notifier Notifier

	mu            sync.RWMutex
	items         []models.Faculty
	pendingDelete string
}

// NewFacultyCoordinator loads the canonical collection from the store.
func NewFacultyCoordinator(ctx context.Context, store FacultyStore, notifier Notifier) (*FacultyCoordinator, error) {
	items, err := store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading faculty collection: %w", err)
	}

	return &FacultyCoordinator{
		store:    store,
		notifier: notifier,
		items:    items,
	}, nil
}

// List returns the visible subset of the collection for the given filter, in
// stable source order.
func (c *FacultyCoordinator) List(filter FacultyFilter) []models.Faculty {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filter.Apply(c.items)
}

// Departments returns the distinct department values of the current
// collection, sorted lexicographically.
func (c *FacultyCoordinator) Departments() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Departments(c.items)
}

// Get returns the record with the given identifier.
func (c *FacultyCoordinator) Get(id string) (models.Faculty, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Faculty{}, apperrors.ErrFacultyNotFound
}

// Create assigns a fresh identifier to the validated payload, persists it,
// then inserts it at the head of the collection and re-sorts the whole
// collection by name ascending.
func (c *FacultyCoordinator) Create(ctx context.Context, payload models.Faculty) (models.Faculty, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.ID = uuid.New().String()

	if err := c.store.Create(ctx, payload); err != nil {
		return models.Faculty{}, fmt.Errorf("error creating faculty member: %w", err)
	}

	c.items = append([]models.Faculty{payload}, c.items...)
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.items[i].Name < c.items[j].Name
	})

	c.notifier.Notify("Faculty Added", fmt.Sprintf("%s has been successfully added.", payload.Name))
	return payload, nil
}

// Update replaces the record matching the payload's target identifier with
// the merge of its prior state and the validated payload. The identifier is
// immutable across updates and the record keeps its position.
func (c *FacultyCoordinator) Update(ctx context.Context, id string, payload models.Faculty) (models.Faculty, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	index := -1
	for i, item := range c.items {
		if item.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return models.Faculty{}, apperrors.ErrFacultyNotFound
	}

	merged := payload
	merged.ID = id

	if err := c.store.Update(ctx, merged); err != nil {
		return models.Faculty{}, fmt.Errorf("error updating faculty member: %w", err)
	}

	c.items[index] = merged
	c.notifier.Notify("Faculty Updated", fmt.Sprintf("%s has been successfully updated.", merged.Name))
	return merged, nil
}

// RequestDelete records a pending delete request for the given record. The
// destructive step only happens on ConfirmDelete, so a single accidental
// trigger cannot destroy data.
func (c *FacultyCoordinator) RequestDelete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ID == id {
			c.pendingDelete = id
			return nil
		}
	}
	return apperrors.ErrFacultyNotFound
}

// ConfirmDelete performs the pending delete request for id. Requests are
// confirmed by identifier: a confirmation whose request has since been
// superseded by one for another record is rejected and deletes nothing.
func (c *FacultyCoordinator) ConfirmDelete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pendingDelete == "" || c.pendingDelete != id {
		return apperrors.ErrNoPendingDelete
	}
	c.pendingDelete = ""

	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting faculty member: %w", err)
	}

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}

	c.notifier.Notify("Faculty Deleted", "The faculty member has been successfully deleted.")
	return nil
}

// CancelDelete drops the pending delete request. The collection is unchanged
// and no acknowledgment is raised.
func (c *FacultyCoordinator) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}
