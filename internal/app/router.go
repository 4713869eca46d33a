package app

import (
	"basecase_backend/docs"
	"basecase_backend/internal/config"
	"basecase_backend/internal/middleware"
	"basecase_backend/internal/model"
	"basecase_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	// Catalog
	rg.GET("/sheets", c.sheet.ListSheets)
	rg.GET("/sheets/:slug", c.sheet.GetSheet)
	rg.GET("/problems", c.problem.ListProblems)
	rg.GET("/problems/:slug", c.problem.GetProblem)

	// Per-problem progress
	rg.PATCH("/progress/:slug", c.progress.UpdateProgress)
	rg.GET("/progress/:slug", c.progress.GetProgress)

	// Dashboard
	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/dashboard/revisions", c.dashboard.GetDueRevisions)

	// AI mentor
	rg.POST("/mentor/ask", c.mentor.Ask)
	rg.GET("/mentor/history", c.mentor.GetHistory)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(a.Config), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/sheets", c.sheet.CreateSheet)
		admin.PUT("/sheets/:id", c.sheet.UpdateSheet)
		admin.DELETE("/sheets/:id", c.sheet.DeleteSheet)

		admin.POST("/problems", c.problem.CreateProblem)
		admin.PUT("/problems/:id", c.problem.UpdateProblem)
		admin.DELETE("/problems/:id", c.problem.DeleteProblem)
	}
}
