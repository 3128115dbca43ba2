package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meera/campusboard/internal/app/models/dto"
	"github.com/meera/campusboard/internal/app/services"
	"github.com/meera/campusboard/internal/middleware"
)

// AuthController handles admin authentication
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates an admin account
// @Summary Admin login
// @Description Verifies credentials and issues a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	token, expiresIn, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.LoginResponse{
			Token:     token,
			ExpiresIn: expiresIn,
		},
		Timestamp: time.Now(),
	})
}
