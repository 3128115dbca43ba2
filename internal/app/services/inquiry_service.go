package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/repositories"
	"github.com/meera/campusboard/internal/app/schema"
)

// InquiryService handles contact inquiry operations
type InquiryService struct {
	inquiryRepo *repositories.InquiryRepository
	logger      zerolog.Logger
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(inquiryRepo *repositories.InquiryRepository, logger zerolog.Logger) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

// List returns every inquiry, newest first.
func (s *InquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	return s.inquiryRepo.GetAll(ctx)
}

// Create validates and stores a public contact form submission.
func (s *InquiryService) Create(ctx context.Context, draft schema.InquiryDraft) (models.Inquiry, error) {
	inquiry, fieldErrs := schema.ValidateInquiry(draft)
	if fieldErrs != nil {
		return models.Inquiry{}, fieldErrs
	}

	inquiry.ID = uuid.New().String()
	inquiry.ReceivedAt = time.Now()

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return models.Inquiry{}, err
	}

	s.logger.Info().Str("inquiryID", inquiry.ID).Msg("Inquiry received")
	return inquiry, nil
}

// MarkRead flags an inquiry as read.
func (s *InquiryService) MarkRead(ctx context.Context, id string) error {
	return s.inquiryRepo.MarkRead(ctx, id)
}

// Delete removes an inquiry.
func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.inquiryRepo.Delete(ctx, id)
}
