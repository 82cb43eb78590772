package app

import (
	"altacoach_backend/docs"
	"altacoach_backend/internal/config"
	"altacoach_backend/internal/middleware"
	"altacoach_backend/internal/model"
	"altacoach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/translations", c.translation.GetTranslations)
		public.GET("/translations/languages", c.translation.ListLanguages)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)

		// Chat ingestion and the suggestion surface.
		authGroup.PUT("/messages", c.message.IngestMessage)
		authGroup.POST("/suggestions", c.suggestion.SubmitFeedback)
		authGroup.GET("/suggestions", c.suggestion.QueryContext)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.dashboard.GetStats)

		admin.POST("/businesses", c.business.CreateBusiness)
		admin.GET("/businesses", c.business.ListBusinesses)
		admin.GET("/businesses/:id", c.business.GetBusiness)
		admin.PUT("/businesses/:id", c.business.UpdateBusiness)
		admin.DELETE("/businesses/:id", c.business.DeleteBusiness)
		admin.POST("/businesses/:id/members", c.business.AddMember)
		admin.GET("/businesses/:id/members", c.business.ListMembers)
		admin.DELETE("/businesses/:id/members/:userId", c.business.RemoveMember)
		admin.GET("/businesses/:id/documents", c.content.ListBusinessDocuments)
		admin.POST("/businesses/:id/documents", c.content.AttachDocument)

		admin.POST("/users", c.user.CreateUser)
		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PATCH("/users/:id/status", c.user.SetStatus)

		admin.POST("/documents", c.content.UploadDocument)
		admin.DELETE("/documents/:id", c.content.DeleteDocument)
	}

	super := router.Group("/api/admin/permissions")
	super.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.SuperAdmin))
	{
		super.GET("", c.permission.ListPresets)
		super.PUT("", c.permission.SavePreset)
		super.GET("/:role", c.permission.GetPreset)
		super.DELETE("/:role", c.permission.DeletePreset)
	}
}
