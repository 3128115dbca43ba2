package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/pkg/apperrors"
	"github.com/meera/campusboard/internal/pkg/logger"
)

// InquiryRepository handles contact inquiry database operations
type InquiryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves every inquiry, newest first.
func (r *InquiryRepository) GetAll(ctx context.Context) ([]models.Inquiry, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "subject", "message", "received_at", "is_read").
		From("inquiries").
		OrderBy("received_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all inquiries SQL")
		return nil, fmt.Errorf("failed to build get all inquiries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all inquiries query")
		return nil, fmt.Errorf("error querying inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		var in models.Inquiry
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Subject, &in.Message, &in.ReceivedAt, &in.IsRead); err != nil {
			logger.Error().Err(err).Msg("Error scanning inquiry row")
			return nil, fmt.Errorf("error scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, in)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating inquiry rows")
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}

	return inquiries, nil
}

// Create inserts a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry models.Inquiry) error {
	sql, args, err := r.sb.Insert("inquiries").
		Columns("id", "name", "email", "subject", "message", "received_at", "is_read").
		Values(inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message, inquiry.ReceivedAt, inquiry.IsRead).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create inquiry SQL")
		return fmt.Errorf("failed to build create inquiry query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("inquiryID", inquiry.ID).Msg("Error executing create inquiry query")
		return fmt.Errorf("error creating inquiry: %w", err)
	}
	return nil
}

// MarkRead flags an inquiry as read
func (r *InquiryRepository) MarkRead(ctx context.Context, id string) error {
	sql, args, err := r.sb.Update("inquiries").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark inquiry read SQL")
		return fmt.Errorf("failed to build mark inquiry read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("inquiryID", id).Msg("Error executing mark inquiry read query")
		return fmt.Errorf("error marking inquiry read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}
	return nil
}

// Delete removes an inquiry by ID
func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("inquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete inquiry SQL")
		return fmt.Errorf("failed to build delete inquiry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("inquiryID", id).Msg("Error executing delete inquiry query")
		return fmt.Errorf("error deleting inquiry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}
	return nil
}
