package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"safemit_training_backend/internal/config"
	"safemit_training_backend/internal/controller"
	"safemit_training_backend/internal/repository"
	"safemit_training_backend/internal/service"
	"safemit_training_backend/pkg/logger"
	"safemit_training_backend/pkg/monitoring"
	"safemit_training_backend/pkg/security"
	"safemit_training_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine

	cfg             atomic.Pointer[config.Config]
	configCallbacks []func(*config.Config)
}

type repositories struct {
	catalog     *repository.CatalogRepository
	progress    *repository.ProgressRepository
	certificate *repository.CertificateRepository
}

type services struct {
	certificate *service.CertificateService
	training    *service.TrainingService
}

type controllers struct {
	training    *controller.TrainingController
	certificate *controller.CertificateController
	facilitator *controller.FacilitatorController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a reloaded config and notifies registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.cfg.Store(cfg)
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	repos := &repositories{
		catalog:     repository.NewCatalogRepository(),
		progress:    repository.NewProgressRepository(),
		certificate: repository.NewCertificateRepository(),
	}

	if cfg.Catalog.ContentFile != "" {
		if err := repos.catalog.LoadFile(cfg.Catalog.ContentFile); err != nil {
			logger.Log.Fatal("Failed to load catalog content file",
				zap.String("path", cfg.Catalog.ContentFile), zap.Error(err))
		}
		logger.Log.Info("Catalog content loaded",
			zap.String("path", cfg.Catalog.ContentFile),
			zap.Int("modules", repos.catalog.Count()))
	} else {
		logger.Log.Info("Serving built-in seed catalog", zap.Int("modules", repos.catalog.Count()))
	}
	return repos
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}
	s.certificate = service.NewCertificateService(repos.certificate)
	s.training = service.NewTrainingService(repos.catalog, repos.progress, s.certificate)
	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		training:    controller.NewTrainingController(s.training),
		certificate: controller.NewCertificateController(s.certificate),
		facilitator: controller.NewFacilitatorController(s.training),
		health:      controller.NewHealthController(repos.catalog),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}
	app.cfg.Store(cfg)

	repos := app.initRepositories(cfg)
	services := app.initServices(repos)
	controllers := app.initControllers(services, repos)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(ginMode(cfg.Server.Mode))
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("safemit-training", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

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

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
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
