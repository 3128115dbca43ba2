package collection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/pkg/apperrors"
)

// BuzzStore is the narrow persistence interface consumed by the buzz
// coordinator.
type BuzzStore interface {
	GetAll(ctx context.Context) ([]models.Buzz, error)
	Create(ctx context.Context, buzz models.Buzz) error
	Update(ctx context.Context, buzz models.Buzz) error
	Delete(ctx context.Context, id string) error
}

// BuzzCoordinator owns the canonical buzz collection. New items are inserted
// first (most-recent-first ordering); create stamps both timestamps, update
// touches only updatedAt.
type BuzzCoordinator struct {
	store    BuzzStore
	notifier Notifier
	now      func() time.Time

	mu            sync.RWMutex
	items         []models.Buzz
	pendingDelete string
}

// NewBuzzCoordinator loads the canonical collection from the store.
func NewBuzzCoordinator(ctx context.Context, store BuzzStore, notifier Notifier) (*BuzzCoordinator, error) {
	items, err := store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading buzz collection: %w", err)
	}

	return &BuzzCoordinator{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		items:    items,
	}, nil
}

// List returns the collection in most-recent-first order.
func (c *BuzzCoordinator) List() []models.Buzz {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Buzz, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given identifier.
func (c *BuzzCoordinator) Get(id string) (models.Buzz, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Buzz{}, apperrors.ErrBuzzNotFound
}

// Create assigns a fresh identifier, stamps createdAt and updatedAt to now,
// persists the record and prepends it to the collection.
func (c *BuzzCoordinator) Create(ctx context.Context, payload models.Buzz) (models.Buzz, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	payload.ID = uuid.New().String()
	payload.CreatedAt = now
	payload.UpdatedAt = now

	if err := c.store.Create(ctx, payload); err != nil {
		return models.Buzz{}, fmt.Errorf("error creating buzz item: %w", err)
	}

	c.items = append([]models.Buzz{payload}, c.items...)
	c.notifier.Notify("Buzz Item Added", fmt.Sprintf("%q has been successfully added.", payload.Title))
	return payload, nil
}

// Update replaces the record matching id with the merge of its prior state
// and the validated payload. Only updatedAt changes; createdAt and the
// identifier are preserved.
func (c *BuzzCoordinator) Update(ctx context.Context, id string, payload models.Buzz) (models.Buzz, error) {
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
		return models.Buzz{}, apperrors.ErrBuzzNotFound
	}

	merged := payload
	merged.ID = id
	merged.CreatedAt = c.items[index].CreatedAt
	merged.UpdatedAt = c.now()

	if err := c.store.Update(ctx, merged); err != nil {
		return models.Buzz{}, fmt.Errorf("error updating buzz item: %w", err)
	}

	c.items[index] = merged
	c.notifier.Notify("Buzz Item Updated", fmt.Sprintf("%q has been successfully updated.", merged.Title))
	return merged, nil
}

// RequestDelete records a pending delete request for the given record.
func (c *BuzzCoordinator) RequestDelete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ID == id {
			c.pendingDelete = id
			return nil
		}
	}
	return apperrors.ErrBuzzNotFound
}

// ConfirmDelete performs the pending delete request for id. Requests are
// confirmed by identifier, so a confirmation whose request has since been
// superseded by one for another record is rejected.
func (c *BuzzCoordinator) ConfirmDelete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pendingDelete == "" || c.pendingDelete != id {
		return apperrors.ErrNoPendingDelete
	}
	c.pendingDelete = ""

	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting buzz item: %w", err)
	}

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}

	c.notifier.Notify("Buzz Item Deleted", "The buzz item has been successfully deleted.")
	return nil
}

// CancelDelete drops the pending delete request without side effects.
func (c *BuzzCoordinator) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = ""
}
