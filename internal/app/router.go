package app

import (
	"sikshyamap_backend/docs"
	"sikshyamap_backend/internal/config"
	"sikshyamap_backend/internal/middleware"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/pkg/monitoring"

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
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.auth.UpdateProfile)

	rg.GET("/concepts", c.concept.List)
	rg.GET("/concepts/:id", c.concept.Get)
	rg.GET("/concepts/:id/resources", c.resource.ListByConcept)
	rg.GET("/concepts/:id/simulations", c.simulation.ListByConcept)
	rg.GET("/concepts/:id/problems", c.problem.ListByConcept)
	rg.GET("/concepts/:id/checkpoints", c.diagnose.ListCheckpoints)

	rg.GET("/problems/:id", c.problem.Get)
	rg.GET("/simulations/:id", c.simulation.Get)

	// Diagnostic submissions
	rg.POST("/diagnose/steps/:stepId/submit", c.diagnose.SubmitStep)
	rg.POST("/diagnose/checkpoints/:checkpointId/submit", c.diagnose.SubmitCheckpoint)

	rg.GET("/progress", c.progress.GetOwn)

	rg.GET("/sessions", c.session.List)
	rg.POST("/sessions/start", c.session.Start)
	rg.POST("/sessions/:id/end", c.session.End)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/students/:id/progress",
		middleware.RoleMiddleware(model.Teacher), c.progress.GetForStudent)

	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.POST("/concepts", c.concept.Create)
		teacher.PUT("/concepts/:id", c.concept.Update)

		teacher.POST("/checkpoints", c.diagnose.CreateCheckpoint)
		teacher.PUT("/checkpoints/:id", c.diagnose.UpdateCheckpoint)
		teacher.DELETE("/checkpoints/:id", c.diagnose.DeleteCheckpoint)
		teacher.GET("/checkpoints/:id/patterns", c.diagnose.ListPatterns)
		teacher.POST("/checkpoints/:id/patterns", c.diagnose.CreatePattern)
		teacher.DELETE("/patterns/:id", c.diagnose.DeletePattern)

		teacher.POST("/problems", c.problem.Create)
		teacher.DELETE("/problems/:id", c.problem.Delete)

		teacher.POST("/resources", c.resource.CreateLink)
		teacher.POST("/resources/upload", c.resource.Upload)
		teacher.DELETE("/resources/:id", c.resource.Delete)

		teacher.POST("/simulations", c.simulation.Create)
	}
}
