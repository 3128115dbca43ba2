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

// FacultyService handles faculty-related operations. Every mutation runs
// through a form so the validation and submission rules are the same no
// matter who the caller is.
type FacultyService struct {
	coordinator *collection.FacultyCoordinator
	logger      zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(coordinator *collection.FacultyCoordinator, logger zerolog.Logger) *FacultyService {
	return &FacultyService{
		coordinator: coordinator,
		logger:      logger,
	}
}

// List returns the faculty collection filtered by the given criteria.
func (s *FacultyService) List(filter collection.FacultyFilter) []models.Faculty {
	return s.coordinator.List(filter)
}

// Departments returns the distinct departments present in the collection.
func (s *FacultyService) Departments() []string {
	return s.coordinator.Departments()
}

// GetByID retrieves a single faculty member.
func (s *FacultyService) GetByID(id string) (models.Faculty, error) {
	return s.coordinator.Get(id)
}

// Create validates the draft through a fresh form and adds the record to the
// collection. Validation failures come back as schema.FieldErrors.
func (s *FacultyService) Create(ctx context.Context, draft schema.FacultyDraft) (models.Faculty, error) {
	form := forms.NewFacultyForm()
	form.Apply(draft)

	var created models.Faculty
	err := form.Submit(func(payload models.Faculty) error {
		record, err := s.coordinator.Create(ctx, payload)
		if err != nil {
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		return models.Faculty{}, err
	}

	s.logger.Info().Str("facultyID", created.ID).Str("name", created.Name).Msg("Faculty member created")
	return created, nil
}

// Update validates the draft against the existing record and replaces it.
func (s *FacultyService) Update(ctx context.Context, id string, draft schema.FacultyDraft) (models.Faculty, error) {
	existing, err := s.coordinator.Get(id)
	if err != nil {
		return models.Faculty{}, err
	}

	form := forms.EditFacultyForm(existing)
	form.Apply(draft)

	var updated models.Faculty
	err = form.Submit(func(payload models.Faculty) error {
		record, err := s.coordinator.Update(ctx, id, payload)
		if err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return models.Faculty{}, err
	}

	s.logger.Info().Str("facultyID", updated.ID).Msg("Faculty member updated")
	return updated, nil
}

// Delete removes a faculty member. An unconfirmed call only registers the
// intent and reports that confirmation is required; the record is untouched.
func (s *FacultyService) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := s.coordinator.RequestDelete(id); err != nil {
		return err
	}

	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	if err := s.coordinator.ConfirmDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("facultyID", id).Msg("Faculty member deleted")
	return nil
}
