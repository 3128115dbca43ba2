package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/models/dto"
	"github.com/meera/campusboard/internal/app/schema"
	"github.com/meera/campusboard/internal/app/services"
	"github.com/meera/campusboard/internal/middleware"
)

// ProfileController handles the authenticated admin's account operations
type ProfileController struct {
	authService *services.AuthService
}

// NewProfileController creates a new ProfileController
func NewProfileController(authService *services.AuthService) *ProfileController {
	return &ProfileController{
		authService: authService,
	}
}

func profileResponse(admin models.Admin) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:     admin.ID,
		Name:   admin.Name,
		Email:  admin.Email,
		Avatar: admin.Avatar,
	}
}

// GetProfile retrieves the authenticated admin's profile
// @Summary Get profile
// @Description Retrieves the authenticated admin's account details
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	adminID, ok := middleware.AdminID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	admin, err := c.authService.GetProfile(ctx, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profileResponse(admin),
		Timestamp: time.Now(),
	})
}

// UpdateProfile updates the authenticated admin's profile
// @Summary Update profile
// @Description Validates and applies name, email and avatar changes
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	adminID, ok := middleware.AdminID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	admin, err := c.authService.UpdateProfile(ctx, adminID, schema.ProfileDraft{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profileResponse(admin),
		Timestamp: time.Now(),
	})
}

// ChangePassword changes the authenticated admin's password
// @Summary Change password
// @Description Verifies the current password and stores the new one
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password changed successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Current password incorrect or token invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/password [put]
func (c *ProfileController) ChangePassword(ctx *gin.Context) {
	adminID, ok := middleware.AdminID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid password data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	err := c.authService.ChangePassword(ctx, adminID, schema.ChangePasswordDraft{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Your password has been updated successfully."},
		Timestamp: time.Now(),
	})
}
