package app

import (
	"homecare_portal/docs"
	"homecare_portal/internal/config"
	"homecare_portal/internal/middleware"
	"homecare_portal/internal/model"

	"homecare_portal/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	router.GET("/api/health", c.health.HealthCheck)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/navigation", c.navigation.Modules)

		a.registerCareRoutes(authGroup, c)
		a.registerBillingRoutes(authGroup, c)
		a.registerCommunicationRoutes(authGroup, c)
		a.registerTrainingRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(authGroup, c)
}

// registerCareRoutes 患者档案、排班与理疗，临床侧角色可见
func (a *App) registerCareRoutes(rg *gin.RouterGroup, c *controllers) {
	clinical := rg.Group("/")
	clinical.Use(middleware.RoleMiddleware(model.RoleNurse, model.RoleSpecialist, model.RoleReceptionist, model.RolePhysiotherapist))
	{
		clinical.GET("/patients", c.patient.List)
		clinical.POST("/patients", c.patient.Create)
		clinical.GET("/patients/:id", c.patient.Get)
		clinical.PUT("/patients/:id", c.patient.Update)
		clinical.DELETE("/patients/:id", c.patient.Delete)

		clinical.GET("/appointments", c.schedule.List)
		clinical.GET("/appointments/calendar", c.schedule.Calendar)
		clinical.POST("/appointments", c.schedule.Create)
		clinical.PUT("/appointments/:id", c.schedule.Update)
		clinical.PUT("/appointments/:id/status", c.schedule.SetStatus)
		clinical.DELETE("/appointments/:id", c.schedule.Delete)
	}

	physio := rg.Group("/physio")
	physio.Use(middleware.RoleMiddleware(model.RolePhysiotherapist, model.RoleSpecialist))
	{
		physio.GET("/assessments", c.physio.ListAssessments)
		physio.POST("/assessments", c.physio.CreateAssessment)
		physio.GET("/plans", c.physio.ListPlans)
		physio.POST("/plans", c.physio.CreatePlan)
		physio.PUT("/plans/:id/progress", c.physio.UpdatePlanProgress)
		physio.GET("/sessions", c.physio.ListSessions)
		physio.POST("/sessions", c.physio.CreateSession)
	}
}

// registerBillingRoutes 账务与分析，财务侧角色可见
func (a *App) registerBillingRoutes(rg *gin.RouterGroup, c *controllers) {
	billing := rg.Group("/")
	billing.Use(middleware.RoleMiddleware(model.RoleBiller, model.RoleReceptionist))
	{
		billing.GET("/invoices", c.billing.List)
		billing.GET("/invoices/:id", c.billing.Get)
		billing.POST("/invoices", c.billing.Create)
		billing.PUT("/invoices/:id", c.billing.Update)
		billing.POST("/invoices/:id/payments", c.billing.RecordPayment)
		billing.GET("/patients/:id/statement", c.billing.Statement)
	}

	analytics := rg.Group("/analytics")
	analytics.Use(middleware.RoleMiddleware(model.RoleBiller))
	{
		analytics.GET("/overview", c.analytics.Overview)
		analytics.GET("/reports/:name", c.analytics.Report)
	}
}

// registerCommunicationRoutes 反馈与站内信，全员可见
func (a *App) registerCommunicationRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/feedback", c.feedback.List)
	rg.POST("/feedback", c.feedback.Create)
	rg.GET("/feedback/summary", c.feedback.Summary)

	conversations := rg.Group("/conversations")
	{
		conversations.GET("", c.messaging.ListConversations)
		conversations.POST("", c.messaging.StartConversation)
		conversations.GET("/unread", c.messaging.UnreadCount)
		conversations.GET("/:id/messages", c.messaging.Thread)
		conversations.POST("/:id/messages", c.messaging.Send)
		conversations.PUT("/:id/read", c.messaging.MarkRead)
	}
}

// registerTrainingRoutes 培训考试，全员可见；作答会话接口是前端考试页的主干
func (a *App) registerTrainingRoutes(rg *gin.RouterGroup, c *controllers) {
	training := rg.Group("/training")
	{
		training.GET("/exams", c.exam.ListPublished)
		training.GET("/exams/:id", c.exam.GetForStudent)
		training.GET("/results/:id", c.exam.GetResult)

		// 作答会话
		training.POST("/exams/:id/attempts", c.examTaking.StartAttempt)
		training.GET("/attempts/:id", c.examTaking.GetSession)
		training.PUT("/attempts/:id/answers", c.examTaking.SelectAnswer)
		training.PUT("/attempts/:id/position", c.examTaking.Navigate)
		training.PUT("/attempts/:id/view", c.examTaking.SetViewMode)
		training.POST("/attempts/:id/submit", c.examTaking.Submit)
		training.DELETE("/attempts/:id", c.examTaking.Abandon)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	// 员工档案仅管理员可维护
	staff := rg.Group("/staff")
	staff.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		staff.GET("", c.staff.List)
		staff.POST("", c.staff.Create)
		staff.GET("/:id", c.staff.Get)
		staff.PUT("/:id", c.staff.Update)
		staff.DELETE("/:id", c.staff.Delete)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		// 试卷管理
		admin.GET("/exams", c.exam.ListAll)
		admin.POST("/exams", c.exam.Create)
		admin.GET("/exams/:id", c.exam.GetForAuthor)
		admin.PUT("/exams/:id", c.exam.Update)
		admin.PUT("/exams/:id/status", c.exam.SetStatus)
	}
}
