package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meera/campusboard/internal/app/controllers"
	"github.com/meera/campusboard/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	facultyController *controllers.FacultyController,
	buzzController *controllers.BuzzController,
	inquiryController *controllers.InquiryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.GET("", facultyController.ListFaculty)
		faculty.GET("/departments", facultyController.ListDepartments)
		faculty.GET("/:id", facultyController.GetFaculty)
	}

	buzz := v1.Group("/buzz")
	{
		buzz.GET("", buzzController.ListBuzz)
		buzz.GET("/:id", buzzController.GetBuzz)
	}

	// The contact form is public; everything else on inquiries is not.
	v1.POST("/inquiries", inquiryController.CreateInquiry)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		facultyProtected := authenticated.Group("/faculty")
		{
			facultyProtected.POST("", facultyController.CreateFaculty)
			facultyProtected.PUT("/:id", facultyController.UpdateFaculty)
			facultyProtected.DELETE("/:id", facultyController.DeleteFaculty)
		}

		buzzProtected := authenticated.Group("/buzz")
		{
			buzzProtected.POST("", buzzController.CreateBuzz)
			buzzProtected.PUT("/:id", buzzController.UpdateBuzz)
			buzzProtected.DELETE("/:id", buzzController.DeleteBuzz)
		}

		inquiries := authenticated.Group("/inquiries")
		{
			inquiries.GET("", inquiryController.ListInquiries)
			inquiries.PATCH("/:id/read", inquiryController.MarkInquiryRead)
			inquiries.DELETE("/:id", inquiryController.DeleteInquiry)
		}

		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
			profile.PUT("/password", profileController.ChangePassword)
		}
	}
}
