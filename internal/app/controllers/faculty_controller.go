package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meera/campusboard/internal/app/collection"
	"github.com/meera/campusboard/internal/app/models"
	"github.com/meera/campusboard/internal/app/models/dto"
	"github.com/meera/campusboard/internal/app/schema"
	"github.com/meera/campusboard/internal/app/services"
	"github.com/meera/campusboard/internal/middleware"
)

// FacultyController handles faculty record operations
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// ListFaculty retrieves faculty members matching the filter criteria
// @Summary List faculty members
// @Description Retrieves faculty members, optionally filtered by search text, department and employment type
// @Tags faculty
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring matched against name, designation and department"
// @Param department query string false "Exact department filter"
// @Param employmentType query string false "Exact employment type filter" Enums(Regular, Contract, Visiting)
// @Success 200 {object} dto.APIResponse{data=dto.FacultyListResponse} "Faculty members retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	var req dto.FacultyFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if req.EmploymentType != "" && !models.EmploymentType(req.EmploymentType).IsValid() {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employment type filter").WithField("employmentType")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	filter := collection.FacultyFilter{
		Search:         req.Search,
		Department:     req.Department,
		EmploymentType: models.EmploymentType(req.EmploymentType),
	}

	faculties := c.facultyService.List(filter)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FacultyListResponse{
			Faculties: faculties,
			Total:     len(faculties),
		},
		Timestamp: time.Now(),
	})
}

// ListDepartments retrieves the distinct departments in the collection
// @Summary List departments
// @Description Retrieves the distinct department values present in the faculty collection
// @Tags faculty
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/departments [get]
func (c *FacultyController) ListDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DepartmentListResponse{
			Departments: c.facultyService.Departments(),
		},
		Timestamp: time.Now(),
	})
}

// GetFaculty retrieves a faculty member by ID
// @Summary Get faculty member
// @Description Retrieves a single faculty member by identifier
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty member retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// CreateFaculty adds a new faculty member
// @Summary Create faculty member
// @Description Validates the submitted draft and adds the faculty member to the collection
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.FacultyDraft true "Faculty draft"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Faculty member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var draft schema.FacultyDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	faculty, err := c.facultyService.Create(ctx, draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// UpdateFaculty updates an existing faculty member
// @Summary Update faculty member
// @Description Validates the submitted draft and replaces the faculty member's data
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body schema.FacultyDraft true "Faculty draft"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty member updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var draft schema.FacultyDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	faculty, err := c.facultyService.Update(ctx, ctx.Param("id"), draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// DeleteFaculty removes a faculty member
// @Summary Delete faculty member
// @Description Removes a faculty member. Requires confirm=true; without it the request only registers the intent and returns 409.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param confirm query bool false "Must be true to perform the delete"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty member deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 409 {object} dto.ErrorResponse "Delete requires confirmation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	confirmed := ctx.Query("confirm") == "true"

	if err := c.facultyService.Delete(ctx, ctx.Param("id"), confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "The faculty member has been successfully deleted."},
		Timestamp: time.Now(),
	})
}
