package app

import (
	"quizhub_backend/docs"
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/middleware"
	"quizhub_backend/internal/model"
	"quizhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerQuizRoutes(authGroup, c)
		a.registerClassroomRoutes(authGroup, c)
		a.registerAttemptRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerQuizRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.Profile)

	rg.POST("/quizzes", c.quiz.Create)
	rg.GET("/quizzes", c.quiz.List)
	rg.GET("/quizzes/:id", c.quiz.Get)
	rg.PATCH("/quizzes/:id", c.quiz.Update)
	rg.DELETE("/quizzes/:id", c.quiz.Delete)

	rg.GET("/quizzes/:id/comments", c.comment.ListByQuiz)
	rg.POST("/quizzes/:id/comments", c.comment.Create)
	rg.PATCH("/comments/:id", c.comment.Update)
	rg.DELETE("/comments/:id", c.comment.Delete)

	rg.GET("/questions/quiz/:quizId", c.question.ListByQuiz)
	rg.POST("/questions/quiz/:quizId", c.question.Create)
	rg.GET("/questions/:id", c.question.Get)
	rg.PATCH("/questions/:id", c.question.Update)
	rg.DELETE("/questions/:id", c.question.Delete)
}

func (a *App) registerClassroomRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/classes", c.class.List)
	rg.POST("/classes", c.class.Create)
	rg.GET("/classes/:id", c.class.Get)
	rg.PATCH("/classes/:id", c.class.Update)
	rg.DELETE("/classes/:id", c.class.Delete)

	rg.POST("/classes/:id/students", c.class.AddStudent)
	rg.DELETE("/classes/:id/students/:userId", c.class.RemoveStudent)
	rg.POST("/classes/:id/teachers", c.class.AddTeacher)
	rg.DELETE("/classes/:id/teachers/:userId", c.class.RemoveTeacher)

	rg.GET("/classes/:id/assignments", c.assignment.ListByClass)
	rg.POST("/classes/:id/assignments", c.assignment.Create)
	rg.GET("/assignments/:id", c.assignment.Get)
	rg.PATCH("/assignments/:id", c.assignment.Update)
	rg.DELETE("/assignments/:id", c.assignment.Delete)
	rg.GET("/assignments/:id/quizzes", c.assignment.ListQuizzes)
	rg.POST("/assignments/:id/quizzes", c.assignment.LinkQuizzes)
	rg.DELETE("/assignments/:id/quizzes/:quizId", c.assignment.UnlinkQuiz)
}

func (a *App) registerAttemptRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/quizzes/:id/attempts", c.attempt.Create)
	rg.GET("/attempts", c.attempt.List)
	rg.GET("/attempts/:id", c.attempt.Get)
	rg.PATCH("/attempts/:id", c.attempt.Finish)
	rg.DELETE("/attempts/:id", c.attempt.Delete)

	rg.GET("/attempts/:id/answers", c.attempt.ListAnswers)
	rg.POST("/attempts/:id/answers", c.attempt.SaveAnswers)
	rg.PATCH("/attempts/:id/answers/:questionId", c.attempt.UpdateAnswer)
	rg.DELETE("/attempts/:id/answers/:questionId", c.attempt.DeleteAnswer)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.user.List)
		admin.POST("/users", c.user.Create)
		admin.GET("/users/:id", c.user.Get)
		admin.PATCH("/users/:id", c.user.Update)
		admin.DELETE("/users/:id", c.user.Delete)
		admin.POST("/users/:id/role", c.user.SetRole)
	}
}
