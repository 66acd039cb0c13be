package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pathshala_backend/internal/config"
	"pathshala_backend/internal/controller"
	"pathshala_backend/internal/questionbank"
	"pathshala_backend/internal/repository"
	"pathshala_backend/internal/service"
	"pathshala_backend/pkg/configwatcher"
	"pathshala_backend/pkg/database"
	"pathshala_backend/pkg/logger"
	"pathshala_backend/pkg/monitoring"
	"pathshala_backend/pkg/security"
	"pathshala_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	learner    repository.LearnerRepository
	question   repository.QuestionRepository
	assessment repository.AssessmentRepository
	studyPlan  repository.StudyPlanRepository
}

type services struct {
	generator  *service.GeneratorService
	learner    *service.LearnerService
	assessment *service.AssessmentService
	studyPlan  *service.StudyPlanService
	progress   *service.ProgressService
}

type controllers struct {
	learner    *controller.LearnerController
	assessment *controller.AssessmentController
	studyPlan  *controller.StudyPlanController
	progress   *controller.ProgressController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		learner:    repository.NewLearnerRepository(db),
		question:   repository.NewQuestionRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		studyPlan:  repository.NewStudyPlanRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}
	bank := questionbank.NewBank()

	s.generator = service.NewGeneratorService(cfg.AI)
	s.learner = service.NewLearnerService(repos.learner)
	s.assessment = service.NewAssessmentService(
		repos.learner,
		repos.question,
		repos.assessment,
		bank,
		s.generator,
		cfg.Skill,
	)
	s.studyPlan = service.NewStudyPlanService(repos.learner, repos.studyPlan, bank)
	s.progress = service.NewProgressService(repos.learner, repos.assessment, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		learner:    controller.NewLearnerController(s.learner),
		assessment: controller.NewAssessmentController(s.assessment, s.progress),
		studyPlan:  controller.NewStudyPlanController(s.studyPlan),
		progress:   controller.NewProgressController(s.progress),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig 配置文件变更时热更新 AI 凭证和超时，不重启服务
func (a *App) watchConfig(s *services) {
	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		s.generator.UpdateConfig(cfg.AI)
		logger.Log.Info("AI配置已热更新", zap.String("model", cfg.AI.Model))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只做缓存，连不上降级为直查数据库
		logger.Log.Warn("Failed to initialize redis, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("pathshala-coach", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)
	app.watchConfig(services)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
