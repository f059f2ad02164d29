package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homecare_portal/internal/config"
	"homecare_portal/internal/controller"
	"homecare_portal/internal/service"
	"homecare_portal/internal/upstream"
	"homecare_portal/pkg/cache"
	"homecare_portal/pkg/logger"
	"homecare_portal/pkg/monitoring"
	"homecare_portal/pkg/security"
	"homecare_portal/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type upstreamAPIs struct {
	patients  *upstream.PatientAPI
	schedule  *upstream.ScheduleAPI
	billing   *upstream.BillingAPI
	staff     *upstream.StaffAPI
	physio    *upstream.PhysioAPI
	feedback  *upstream.FeedbackAPI
	messaging *upstream.MessagingAPI
	analytics *upstream.AnalyticsAPI
	exams     *upstream.ExamAPI
}

type services struct {
	patient    *service.PatientService
	schedule   *service.ScheduleService
	billing    *service.BillingService
	staff      *service.StaffService
	physio     *service.PhysioService
	feedback   *service.FeedbackService
	messaging  *service.MessagingService
	analytics  *service.AnalyticsService
	exam       *service.ExamService
	examTaking *service.ExamTakingService
	navigation *service.NavigationService
}

type controllers struct {
	patient    *controller.PatientController
	schedule   *controller.ScheduleController
	billing    *controller.BillingController
	staff      *controller.StaffController
	physio     *controller.PhysioController
	feedback   *controller.FeedbackController
	messaging  *controller.MessagingController
	analytics  *controller.AnalyticsController
	exam       *controller.ExamController
	examTaking *controller.ExamTakingController
	navigation *controller.NavigationController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新回调入口。路由与中间件已装配完成，
// 只下发给注册过回调的组件
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initUpstreamAPIs(cfg *config.Config) *upstreamAPIs {
	client := upstream.NewClient(&cfg.Upstream)
	return &upstreamAPIs{
		patients:  upstream.NewPatientAPI(client),
		schedule:  upstream.NewScheduleAPI(client),
		billing:   upstream.NewBillingAPI(client),
		staff:     upstream.NewStaffAPI(client),
		physio:    upstream.NewPhysioAPI(client),
		feedback:  upstream.NewFeedbackAPI(client),
		messaging: upstream.NewMessagingAPI(client),
		analytics: upstream.NewAnalyticsAPI(client),
		exams:     upstream.NewExamAPI(client),
	}
}

func (a *App) initServices(apis *upstreamAPIs, cfg *config.Config, rdb *redis.Client) *services {
	store := cache.NewStore(rdb)

	s := &services{}
	s.patient = service.NewPatientService(apis.patients)
	s.schedule = service.NewScheduleService(apis.schedule)
	s.billing = service.NewBillingService(apis.billing)
	s.staff = service.NewStaffService(apis.staff)
	s.physio = service.NewPhysioService(apis.physio)
	s.feedback = service.NewFeedbackService(apis.feedback)
	s.messaging = service.NewMessagingService(apis.messaging)
	s.analytics = service.NewAnalyticsService(apis.analytics, store, time.Duration(cfg.Cache.AnalyticsTTLSeconds)*time.Second)
	s.exam = service.NewExamService(apis.exams, store, time.Duration(cfg.Cache.ExamListTTLSeconds)*time.Second)
	s.examTaking = service.NewExamTakingService(apis.exams, time.Duration(cfg.Exam.TickMillis)*time.Millisecond)
	s.navigation = service.NewNavigationService()
	return s
}

func (a *App) initControllers(s *services, rdb *redis.Client) *controllers {
	return &controllers{
		patient:    controller.NewPatientController(s.patient),
		schedule:   controller.NewScheduleController(s.schedule),
		billing:    controller.NewBillingController(s.billing),
		staff:      controller.NewStaffController(s.staff),
		physio:     controller.NewPhysioController(s.physio),
		feedback:   controller.NewFeedbackController(s.feedback),
		messaging:  controller.NewMessagingController(s.messaging),
		analytics:  controller.NewAnalyticsController(s.analytics),
		exam:       controller.NewExamController(s.exam),
		examTaking: controller.NewExamTakingController(s.examTaking),
		navigation: controller.NewNavigationController(s.navigation),
		health:     controller.NewHealthController(rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	rdb, err := cache.InitRedis(&cfg.Redis)
	if err != nil {
		// redis只做加速层，连不上时降级为直连上游
		logger.Log.Warn("Redis unavailable, response caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		Redis:  rdb,
	}

	apis := app.initUpstreamAPIs(cfg)
	services := app.initServices(apis, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("homecare-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 停掉所有在途考试会话的倒计时协程
	if a.services != nil && a.services.examTaking != nil {
		a.services.examTaking.Close()
	}

	// 关闭服务
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
