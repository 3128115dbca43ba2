package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/pkg/apperrors"
	"github.com/meera/campusboard/internal/pkg/dberrors"
	"github.com/meera/campusboard/internal/pkg/logger"
)

// adminEmailConstraint is the unique constraint guarding admin emails.
const adminEmailConstraint = "admins_email_key"

// AdminRepository handles administrator account database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByEmail retrieves an admin account by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password_hash", "avatar").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin by email SQL")
		return models.Admin{}, fmt.Errorf("failed to build get admin query: %w", err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.Avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning admin row")
		return models.Admin{}, fmt.Errorf("error getting admin by email: %w", err)
	}

	return admin, nil
}

// GetByID retrieves an admin account by ID
func (r *AdminRepository) GetByID(ctx context.Context, id string) (models.Admin, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password_hash", "avatar").
		From("admins").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin by ID SQL")
		return models.Admin{}, fmt.Errorf("failed to build get admin query: %w", err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash, &admin.Avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("adminID", id).Msg("Error scanning admin row")
		return models.Admin{}, fmt.Errorf("error getting admin by ID: %w", err)
	}

	return admin, nil
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin models.Admin) error {
	sql, args, err := r.sb.Insert("admins").
		Columns("id", "name", "email", "password_hash", "avatar").
		Values(admin.ID, admin.Name, admin.Email, admin.PasswordHash, admin.Avatar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return fmt.Errorf("failed to build create admin query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, adminEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", admin.Email).Msg("Error executing create admin query")
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

// UpdateProfile updates the name, email and avatar of an admin account
func (r *AdminRepository) UpdateProfile(ctx context.Context, admin models.Admin) error {
	sql, args, err := r.sb.Update("admins").
		SetMap(map[string]interface{}{
			"name":   admin.Name,
			"email":  admin.Email,
			"avatar": admin.Avatar,
		}).
		Where(squirrel.Eq{"id": admin.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admin profile SQL")
		return fmt.Errorf("failed to build update admin profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, adminEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("adminID", admin.ID).Msg("Error executing update admin profile query")
		return fmt.Errorf("error updating admin profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash of an admin account
func (r *AdminRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	sql, args, err := r.sb.Update("admins").
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admin password SQL")
		return fmt.Errorf("failed to build update admin password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("adminID", id).Msg("Error executing update admin password query")
		return fmt.Errorf("error updating admin password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}

// CountAdmins returns the number of admin accounts
func (r *AdminRepository) CountAdmins(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("admins").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count admins SQL")
		return 0, fmt.Errorf("failed to build count admins query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting admins")
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}
