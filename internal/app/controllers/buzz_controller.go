package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meera/campusboard/internal/app/models/dto"
	"github.com/meera/campusboard/internal/app/schema"
	"github.com/meera/campusboard/internal/app/services"
	"github.com/meera/campusboard/internal/middleware"
)

// BuzzController handles buzz announcement operations
type BuzzController struct {
	buzzService *services.BuzzService
}

// NewBuzzController creates a new BuzzController
func NewBuzzController(buzzService *services.BuzzService) *BuzzController {
	return &BuzzController{
		buzzService: buzzService,
	}
}

// ListBuzz retrieves the buzz feed
// @Summary List buzz items
// @Description Retrieves every buzz announcement, most recent first
// @Tags buzz
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.BuzzListResponse} "Buzz items retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /buzz [get]
func (c *BuzzController) ListBuzz(ctx *gin.Context) {
	items := c.buzzService.List()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.BuzzListResponse{
			Items: items,
			Total: len(items),
		},
		Timestamp: time.Now(),
	})
}

// GetBuzz retrieves a buzz item by ID
// @Summary Get buzz item
// @Description Retrieves a single buzz announcement by identifier
// @Tags buzz
// @Accept json
// @Produce json
// @Param id path string true "Buzz ID"
// @Success 200 {object} dto.APIResponse{data=models.Buzz} "Buzz item retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Buzz item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /buzz/{id} [get]
func (c *BuzzController) GetBuzz(ctx *gin.Context) {
	buzz, err := c.buzzService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      buzz,
		Timestamp: time.Now(),
	})
}

// CreateBuzz adds a new buzz item
// @Summary Create buzz item
// @Description Validates the submitted draft and prepends the buzz item to the feed
// @Tags buzz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.BuzzDraft true "Buzz draft"
// @Success 201 {object} dto.APIResponse{data=models.Buzz} "Buzz item created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /buzz [post]
func (c *BuzzController) CreateBuzz(ctx *gin.Context) {
	var draft schema.BuzzDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid buzz data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	buzz, err := c.buzzService.Create(ctx, draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      buzz,
		Timestamp: time.Now(),
	})
}

// UpdateBuzz updates an existing buzz item
// @Summary Update buzz item
// @Description Validates the submitted draft and replaces the buzz item's content
// @Tags buzz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buzz ID"
// @Param request body schema.BuzzDraft true "Buzz draft"
// @Success 200 {object} dto.APIResponse{data=models.Buzz} "Buzz item updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Buzz item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /buzz/{id} [put]
func (c *BuzzController) UpdateBuzz(ctx *gin.Context) {
	var draft schema.BuzzDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid buzz data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	buzz, err := c.buzzService.Update(ctx, ctx.Param("id"), draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      buzz,
		Timestamp: time.Now(),
	})
}

// DeleteBuzz removes a buzz item
// @Summary Delete buzz item
// @Description Removes a buzz item. Requires confirm=true; without it the request only registers the intent and returns 409.
// @Tags buzz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buzz ID"
// @Param confirm query bool false "Must be true to perform the delete"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Buzz item deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Buzz item not found"
// @Failure 409 {object} dto.ErrorResponse "Delete requires confirmation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /buzz/{id} [delete]
func (c *BuzzController) DeleteBuzz(ctx *gin.Context) {
	confirmed := ctx.Query("confirm") == "true"

	if err := c.buzzService.Delete(ctx, ctx.Param("id"), confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "The buzz item has been successfully deleted."},
		Timestamp: time.Now(),
	})
}
