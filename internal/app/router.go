package app

import (
	"pathshala_backend/docs"
	"pathshala_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 学习者
		api.POST("/users", c.learner.CreateLearner)
		api.GET("/users/:id", c.learner.GetLearner)

		// 测评
		api.POST("/diagnostic-test", c.assessment.StartDiagnostic)
		api.POST("/submit-answer", c.assessment.SubmitAnswer)
		api.POST("/complete-assessment", c.assessment.CompleteAssessment)
		api.GET("/adaptive-practice", c.assessment.AdaptivePractice)
		api.POST("/ai-feedback", c.assessment.AnswerFeedback)
		api.GET("/assessments/:userId", c.assessment.ListAssessments)

		// 学习计划与进度
		api.GET("/study-plan/:userId", c.studyPlan.DailyPlan)
		api.GET("/progress/:userId", c.progress.Progress)
	}
}
