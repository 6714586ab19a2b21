package app

import (
	"safemit_training_backend/docs"
	"safemit_training_backend/internal/middleware"
	"safemit_training_backend/internal/model"
	"safemit_training_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需学员身份)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/training/certificates/verify/:code", c.certificate.VerifyCertificate)
	}

	// 学员路由
	training := router.Group("/api/training")
	training.Use(middleware.LearnerMiddleware())
	{
		training.GET("/modules", c.training.ListModules)
		training.GET("/modules/:moduleId", c.training.GetModule)
		training.GET("/modules/:moduleId/progress", c.training.GetProgress)
		training.POST("/modules/:moduleId/lessons/:lessonId/start", c.training.StartLesson)
		training.POST("/modules/:moduleId/lesson/advance", c.training.AdvanceLesson)
		training.POST("/modules/:moduleId/lesson/retreat", c.training.RetreatLesson)
		training.GET("/modules/:moduleId/quiz", c.training.GetQuiz)
		training.POST("/modules/:moduleId/quiz/submit", c.training.SubmitQuiz)
		training.GET("/certificates", c.certificate.ListCertificates)
	}

	// 辅导员路由
	facilitator := router.Group("/api/facilitator")
	facilitator.Use(middleware.LearnerMiddleware(), middleware.RoleMiddleware(model.RoleFacilitator))
	{
		facilitator.GET("/modules/:moduleId/learners", c.facilitator.ModuleLearners)
	}
}
