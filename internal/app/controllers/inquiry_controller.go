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

// InquiryController handles contact inquiry operations
type InquiryController struct {
	inquiryService *services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService *services.InquiryService) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
	}
}

// ListInquiries retrieves every inquiry
// @Summary List inquiries
// @Description Retrieves contact inquiries, newest first
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InquiryListResponse} "Inquiries retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [get]
func (c *InquiryController) ListInquiries(ctx *gin.Context) {
	inquiries, err := c.inquiryService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	unread := 0
	for _, in := range inquiries {
		if !in.IsRead {
			unread++
		}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.InquiryListResponse{
			Inquiries: inquiries,
			Total:     len(inquiries),
			Unread:    unread,
		},
		Timestamp: time.Now(),
	})
}

// CreateInquiry stores a public contact form submission
// @Summary Submit inquiry
// @Description Validates and stores a contact form submission
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Inquiry payload"
// @Success 201 {object} dto.APIResponse{data=models.Inquiry} "Inquiry submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries [post]
func (c *InquiryController) CreateInquiry(ctx *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid inquiry data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	inquiry, err := c.inquiryService.Create(ctx, schema.InquiryDraft{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      inquiry,
		Timestamp: time.Now(),
	})
}

// MarkInquiryRead flags an inquiry as read
// @Summary Mark inquiry read
// @Description Flags a contact inquiry as read
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Inquiry marked read"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries/{id}/read [patch]
func (c *InquiryController) MarkInquiryRead(ctx *gin.Context) {
	if err := c.inquiryService.MarkRead(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Inquiry marked as read."},
		Timestamp: time.Now(),
	})
}

// DeleteInquiry removes an inquiry
// @Summary Delete inquiry
// @Description Removes a contact inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Inquiry deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inquiries/{id} [delete]
func (c *InquiryController) DeleteInquiry(ctx *gin.Context) {
	if err := c.inquiryService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Inquiry deleted."},
		Timestamp: time.Now(),
	})
}
