package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/meera/campusboard/internal/app/collection"
	"github.com/meera/campusboard/internal/app/forms"
	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/schema"
	"github.com/meera/campusboard/internal/pkg/apperrors"
)

// BuzzService handles buzz announcement operations
type BuzzService struct {
	coordinator *collection.BuzzCoordinator
	logger      zerolog.Logger
}

// NewBuzzService creates a new buzz service instance
func NewBuzzService(coordinator *collection.BuzzCoordinator, logger zerolog.Logger) *BuzzService {
	return &BuzzService{
		coordinator: coordinator,
		logger:      logger,
	}
}

// List returns the buzz feed, most recent first.
func (s *BuzzService) List() []models.Buzz {
	return s.coordinator.List()
}

// GetByID retrieves a single buzz item.
func (s *BuzzService) GetByID(id string) (models.Buzz, error) {
	return s.coordinator.Get(id)
}

// Create validates the draft through a fresh form and prepends the record to
// the feed.
func (s *BuzzService) Create(ctx context.Context, draft schema.BuzzDraft) (models.Buzz, error) {
	form := forms.NewBuzzForm()
	form.Apply(draft)

	var created models.Buzz
	err := form.Submit(func(payload models.Buzz) error {
		record, err := s.coordinator.Create(ctx, payload)
		if err != nil {
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		return models.Buzz{}, err
	}

	s.logger.Info().Str("buzzID", created.ID).Str("title", created.Title).Msg("Buzz item created")
	return created, nil
}

// Update validates the draft against the existing record and replaces it.
func (s *BuzzService) Update(ctx context.Context, id string, draft schema.BuzzDraft) (models.Buzz, error) {
	existing, err := s.coordinator.Get(id)
	if err != nil {
		return models.Buzz{}, err
	}

	form := forms.EditBuzzForm(existing)
	form.Apply(draft)

	var updated models.Buzz
	err = form.Submit(func(payload models.Buzz) error {
		record, err := s.coordinator.Update(ctx, id, payload)
		if err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return models.Buzz{}, err
	}

	s.logger.Info().Str("buzzID", updated.ID).Msg("Buzz item updated")
	return updated, nil
}

// Delete removes a buzz item. An unconfirmed call only registers the intent
// and reports that confirmation is required.
func (s *BuzzService) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := s.coordinator.RequestDelete(id); err != nil {
		return err
	}

	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	if err := s.coordinator.ConfirmDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("buzzID", id).Msg("Buzz item deleted")
	return nil
}
