package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"altacoach_backend/internal/config"
	"altacoach_backend/internal/controller"
	"altacoach_backend/internal/i18n"
	"altacoach_backend/internal/repository"
	"altacoach_backend/internal/service"
	"altacoach_backend/pkg/configwatcher"
	"altacoach_backend/pkg/database"
	"altacoach_backend/pkg/logger"
	"altacoach_backend/pkg/monitoring"
	"altacoach_backend/pkg/security"
	"altacoach_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Translator      *i18n.Translator
	configCallbacks []func(*config.Config)
}

// RegisterConfigCallback subscribes to hot config reloads. Callbacks run
// on the watcher goroutine.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

type repositories struct {
	user       *repository.UserRepository
	business   *repository.BusinessRepository
	document   *repository.DocumentRepository
	suggestion *repository.SuggestionRepository
	permission *repository.PermissionRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	business   *service.BusinessService
	storage    *service.StorageService
	content    *service.ContentService
	reconciler *service.ReconcilerService
	dashboard  *service.DashboardService
	permission *service.PermissionService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	business    *controller.BusinessController
	content     *controller.ContentController
	message     *controller.MessageController
	suggestion  *controller.SuggestionController
	dashboard   *controller.DashboardController
	permission  *controller.PermissionController
	translation *controller.TranslationController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		business:   repository.NewBusinessRepository(db),
		document:   repository.NewDocumentRepository(db),
		suggestion: repository.NewSuggestionRepository(db),
		permission: repository.NewPermissionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.business = service.NewBusinessService(repos.business, repos.user, rdb)
	s.content = service.NewContentService(repos.document, repos.business, s.storage)
	s.reconciler = service.NewReconcilerService(repos.user, repos.business, repos.suggestion, repos.document, rdb)
	s.permission = service.NewPermissionService(repos.permission)

	s.dashboard = service.NewDashboardService(
		service.Metric{Field: "totalUsers", Fetch: repos.user.Count},
		service.Metric{Field: "totalBusinesses", Fetch: repos.business.Count},
		service.Metric{Field: "totalDocuments", Fetch: repos.document.Count},
		service.Metric{Field: "openQuestions", Fetch: repos.suggestion.CountOpen},
		service.Metric{Field: "answeredQuestions", Fetch: repos.suggestion.CountAnswered},
		service.Metric{Field: "feedbackCount", Fetch: repos.suggestion.CountFeedback},
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, translator *i18n.Translator) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		business:    controller.NewBusinessController(s.business, s.auth),
		content:     controller.NewContentController(s.content),
		message:     controller.NewMessageController(s.reconciler),
		suggestion:  controller.NewSuggestionController(s.reconciler),
		dashboard:   controller.NewDashboardController(s.dashboard),
		permission:  controller.NewPermissionController(s.permission),
		translation: controller.NewTranslationController(translator),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, translator *i18n.Translator) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The cache is an optimization; run without it rather than refuse to start.
		logger.Log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config:     cfg,
		DB:         db,
		Redis:      rdb,
		Translator: translator,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, translator)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("altacoach-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		a.Config = newCfg
		logger.Log.Info("configuration reloaded")
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})

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
