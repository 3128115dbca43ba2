package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meera/campusboard/internal/app/models/dto"
	"github.com/meera/campusboard/internal/app/schema"
	"github.com/meera/campusboard/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Field-scoped
// validation errors become a 400 carrying every failing field; everything
// else maps by sentinel.
func HandleAPIError(c *gin.Context, err error) {
	if fieldErrs, ok := schema.AsFieldErrors(err); ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(dto.FromFieldErrors(fieldErrs))
		c.JSON(400, dto.APIResponse{
			Error:     detail,
			Timestamp: time.Now(),
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Faculty member not found")
	case errors.Is(err, apperrors.ErrBuzzNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Buzz item not found")
	case errors.Is(err, apperrors.ErrInquiryNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Inquiry not found")
	case errors.Is(err, apperrors.ErrAdminNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Admin account not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrConfirmationRequired):
		respondError(c, 409, dto.ErrorCodeConfirmationRequired, "Delete requires confirmation")
	case errors.Is(err, apperrors.ErrNoPendingDelete):
		respondError(c, 409, dto.ErrorCodeConfirmationRequired, "No delete request is pending")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, 401, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, 401, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, 401, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, 400, dto.ErrorCodeValidationFailed, "Validation failed")
	default:
		respondError(c, 500, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
