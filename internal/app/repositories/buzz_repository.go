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

// BuzzRepository handles buzz announcement database operations
type BuzzRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBuzzRepository creates a new BuzzRepository
func NewBuzzRepository(db *pgxpool.Pool) *BuzzRepository {
	return &BuzzRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves every buzz item, most recent first.
func (r *BuzzRepository) GetAll(ctx context.Context) ([]models.Buzz, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "image_url", "created_at", "updated_at").
		From("buzz").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all buzz SQL")
		return nil, fmt.Errorf("failed to build get all buzz query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all buzz query")
		return nil, fmt.Errorf("error querying buzz items: %w", err)
	}
	defer rows.Close()

	items := []models.Buzz{}
	for rows.Next() {
		var b models.Buzz
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning buzz row")
			return nil, fmt.Errorf("error scanning buzz row: %w", err)
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating buzz rows")
		return nil, fmt.Errorf("error iterating buzz rows: %w", err)
	}

	return items, nil
}

// Create inserts a new buzz item
func (r *BuzzRepository) Create(ctx context.Context, buzz models.Buzz) error {
	sql, args, err := r.sb.Insert("buzz").
		Columns("id", "title", "content", "image_url", "created_at", "updated_at").
		Values(buzz.ID, buzz.Title, buzz.Content, buzz.ImageURL, buzz.CreatedAt, buzz.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create buzz SQL")
		return fmt.Errorf("failed to build create buzz query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("buzzID", buzz.ID).Msg("Error executing create buzz query")
		return fmt.Errorf("error creating buzz item: %w", err)
	}
	return nil
}

// Update rewrites an existing buzz item
func (r *BuzzRepository) Update(ctx context.Context, buzz models.Buzz) error {
	sql, args, err := r.sb.Update("buzz").
		SetMap(map[string]interface{}{
			"title":      buzz.Title,
			"content":    buzz.Content,
			"image_url":  buzz.ImageURL,
			"updated_at": buzz.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": buzz.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update buzz SQL")
		return fmt.Errorf("failed to build update buzz query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("buzzID", buzz.ID).Msg("Error executing update buzz query")
		return fmt.Errorf("error updating buzz item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBuzzNotFound
	}
	return nil
}

// Delete removes a buzz item by ID
func (r *BuzzRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("buzz").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete buzz SQL")
		return fmt.Errorf("failed to build delete buzz query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("buzzID", id).Msg("Error executing delete buzz query")
		return fmt.Errorf("error deleting buzz item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBuzzNotFound
	}
	return nil
}
