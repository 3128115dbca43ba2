package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/repositories"
	"github.com/meera/campusboard/internal/app/schema"
	"github.com/meera/campusboard/internal/pkg/apperrors"
	"github.com/meera/campusboard/internal/pkg/auth"
)

// AuthService handles admin authentication and account management
type AuthService struct {
	adminRepo  *repositories.AdminRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo *repositories.AdminRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (token string, expiresIn int64, err error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrAdminNotFound) {
			return "", 0, apperrors.ErrInvalidCredentials
		}
		return "", 0, fmt.Errorf("error looking up admin: %w", err)
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		s.logger.Warn().Str("email", email).Msg("Failed login attempt")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err = s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return "", 0, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("adminID", admin.ID).Msg("Admin logged in")
	return token, expiresIn, nil
}

// GetProfile retrieves the authenticated admin's account.
func (s *AuthService) GetProfile(ctx context.Context, adminID string) (models.Admin, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}

// UpdateProfile validates and applies profile changes for the authenticated
// admin.
func (s *AuthService) UpdateProfile(ctx context.Context, adminID string, draft schema.ProfileDraft) (models.Admin, error) {
	if fieldErrs := schema.ValidateProfile(draft); fieldErrs != nil {
		return models.Admin{}, fieldErrs
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return models.Admin{}, err
	}

	admin.Name = draft.Name
	admin.Email = draft.Email
	admin.Avatar = draft.Avatar

	if err := s.adminRepo.UpdateProfile(ctx, admin); err != nil {
		return models.Admin{}, err
	}

	s.logger.Info().Str("adminID", adminID).Msg("Admin profile updated")
	return admin, nil
}

// ChangePassword verifies the current password and stores the new one. The
// new password and its confirmation must already agree, which the schema
// checks field by field.
func (s *AuthService) ChangePassword(ctx context.Context, adminID string, draft schema.ChangePasswordDraft) error {
	if fieldErrs := schema.ValidateChangePassword(draft); fieldErrs != nil {
		return fieldErrs
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(admin.PasswordHash, draft.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(draft.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, adminID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("adminID", adminID).Msg("Admin password changed")
	return nil
}
