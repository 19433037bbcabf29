package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/controllers"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	userController *controllers.UserController,
	adminUserController *controllers.AdminUserController,
	adminInstructorController *controllers.AdminInstructorController,
	adminContentController *controllers.AdminContentController,
	adminSubscriptionController *controllers.AdminSubscriptionController,
	adminAnalyticsController *controllers.AdminAnalyticsController,
	instructorCourseController *controllers.InstructorCourseController,
	instructorBlogController *controllers.InstructorBlogController,
	instructorProfileController *controllers.InstructorProfileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	v1.GET("/courses", catalogController.ListCourses)
	v1.GET("/courses/:id", catalogController.GetCourse)
	v1.GET("/blogs", catalogController.ListBlogs)
	v1.GET("/blogs/:id", catalogController.GetBlog)
	v1.GET("/subscription-types", catalogController.ListSubscriptionTypes)

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.RegisterUser)
		auth.POST("/login", authController.LoginUser)
		auth.POST("/instructor/register", authController.RegisterInstructor)
		auth.POST("/instructor/login", authController.LoginInstructor)
		auth.POST("/admin/login", authController.LoginAdmin)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// User self-service routes
	users := authenticated.Group("/users")
	users.Use(authMiddleware.RoleRequired(models.RoleUser))
	{
		users.GET("/profile", userController.GetProfile)
		users.PUT("/profile", userController.UpdateProfile)
	}

	// Instructor routes, scoped to the authenticated instructor's own content
	instructor := authenticated.Group("/instructor")
	instructor.Use(authMiddleware.RoleRequired(models.RoleInstructor))
	{
		instructor.GET("/profile", instructorProfileController.GetProfile)
		instructor.PUT("/profile", instructorProfileController.UpdateProfile)
		instructor.GET("/dashboard", instructorProfileController.DashboardStats)

		instructor.GET("/courses", instructorCourseController.ListMyCourses)
		instructor.POST("/courses", instructorCourseController.CreateCourse)
		instructor.GET("/courses/:id", instructorCourseController.GetCourse)
		instructor.PUT("/courses/:id", instructorCourseController.UpdateCourse)
		instructor.DELETE("/courses/:id", instructorCourseController.DeleteCourse)
		instructor.PATCH("/courses/:id/toggle-published", instructorCourseController.TogglePublished)
		instructor.POST("/courses/:id/thumbnail", instructorCourseController.UploadThumbnail)

		instructor.GET("/blogs", instructorBlogController.ListMyBlogs)
		instructor.POST("/blogs", instructorBlogController.CreateBlog)
		instructor.GET("/blogs/:id", instructorBlogController.GetBlog)
		instructor.PUT("/blogs/:id", instructorBlogController.UpdateBlog)
		instructor.DELETE("/blogs/:id", instructorBlogController.DeleteBlog)
		instructor.PATCH("/blogs/:id/schedule", instructorBlogController.ScheduleBlog)
		instructor.PATCH("/blogs/:id/publish", instructorBlogController.PublishNow)
		instructor.POST("/blogs/:id/thumbnail", instructorBlogController.UploadThumbnail)
	}

	// Admin routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", adminUserController.ListUsers)
		admin.GET("/users/:id", adminUserController.GetUser)
		admin.PATCH("/users/:id/toggle-status", adminUserController.ToggleUserStatus)
		admin.DELETE("/users/:id", adminUserController.DeleteUser)

		admin.GET("/instructors", adminInstructorController.ListInstructors)
		admin.GET("/instructors/:id", adminInstructorController.GetInstructor)
		admin.PATCH("/instructors/:id/toggle-verification", adminInstructorController.ToggleVerification)
		admin.DELETE("/instructors/:id", adminInstructorController.DeleteInstructor)

		admin.GET("/courses", adminContentController.ListCourses)
		admin.GET("/courses/:id", adminContentController.GetCourse)
		admin.PATCH("/courses/:id/toggle-published", adminContentController.ToggleCoursePublished)
		admin.DELETE("/courses/:id", adminContentController.DeleteCourse)

		admin.GET("/blogs", adminContentController.ListBlogs)
		admin.GET("/blogs/:id", adminContentController.GetBlog)
		admin.DELETE("/blogs/:id", adminContentController.DeleteBlog)

		admin.GET("/subscriptions", adminSubscriptionController.ListSubscriptions)
		admin.GET("/subscriptions/:id", adminSubscriptionController.GetSubscription)

		admin.GET("/subscription-types", adminSubscriptionController.ListSubscriptionTypes)
		admin.POST("/subscription-types", adminSubscriptionController.CreateSubscriptionType)
		admin.GET("/subscription-types/:id", adminSubscriptionController.GetSubscriptionType)
		admin.PUT("/subscription-types/:id", adminSubscriptionController.UpdateSubscriptionType)
		admin.PATCH("/subscription-types/:id/toggle-status", adminSubscriptionController.ToggleSubscriptionTypeStatus)
		admin.DELETE("/subscription-types/:id", adminSubscriptionController.DeleteSubscriptionType)

		admin.GET("/analytics/revenue", adminAnalyticsController.RevenueStats)
		admin.GET("/analytics/dashboard", adminAnalyticsController.DashboardStats)
	}
}
