package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sikshyamap_backend/internal/config"
	"sikshyamap_backend/internal/controller"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/service"
	"sikshyamap_backend/internal/util"
	"sikshyamap_backend/pkg/database"
	"sikshyamap_backend/pkg/logger"
	"sikshyamap_backend/pkg/monitoring"
	"sikshyamap_backend/pkg/security"
	"sikshyamap_backend/pkg/tracing"
	"syscall"
	"time"

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
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	concept      *repository.ConceptRepository
	checkpoint   *repository.CheckpointRepository
	errorPattern *repository.ErrorPatternRepository
	problem      *repository.ProblemRepository
	progress     *repository.ProgressRepository
	resource     *repository.ResourceRepository
	simulation   *repository.SimulationRepository
	session      *repository.SessionRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	concept    *service.ConceptService
	checkpoint *service.CheckpointService
	diagnostic *service.DiagnosticService
	problem    *service.ProblemService
	progress   *service.ProgressService
	storage    *service.StorageService
	resource   *service.ResourceService
	simulation *service.SimulationService
	session    *service.SessionService
}

type controllers struct {
	auth       *controller.AuthController
	concept    *controller.ConceptController
	problem    *controller.ProblemController
	diagnose   *controller.DiagnoseController
	progress   *controller.ProgressController
	resource   *controller.ResourceController
	simulation *controller.SimulationController
	session    *controller.SessionController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a hot-reloaded config and notifies subscribers.
// Settings read once at startup (ports, DB connections) keep their old
// values until a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		concept:      repository.NewConceptRepository(db),
		checkpoint:   repository.NewCheckpointRepository(db),
		errorPattern: repository.NewErrorPatternRepository(db),
		problem:      repository.NewProblemRepository(db),
		progress:     repository.NewProgressRepository(db),
		resource:     repository.NewResourceRepository(db),
		simulation:   repository.NewSimulationRepository(db),
		session:      repository.NewSessionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.concept = service.NewConceptService(repos.concept, rdb)
	s.checkpoint = service.NewCheckpointService(repos.checkpoint, repos.errorPattern, repos.concept)
	s.diagnostic = service.NewDiagnosticService(
		repos.checkpoint,
		repos.errorPattern,
		repos.problem,
		repos.user,
		repos.progress,
	)
	s.problem = service.NewProblemService(repos.problem, repos.concept)
	s.progress = service.NewProgressService(repos.progress, repos.concept, repos.user)
	s.resource = service.NewResourceService(repos.resource, repos.concept, s.storage)
	s.simulation = service.NewSimulationService(repos.simulation, repos.concept)
	s.session = service.NewSessionService(repos.session, repos.concept, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		concept:    controller.NewConceptController(s.concept),
		problem:    controller.NewProblemController(s.problem),
		diagnose:   controller.NewDiagnoseController(s.diagnostic, s.checkpoint),
		progress:   controller.NewProgressController(s.progress),
		resource:   controller.NewResourceController(s.resource),
		simulation: controller.NewSimulationController(s.simulation),
		session:    controller.NewSessionController(s.session),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis is a cache and presence layer, not a source of truth; run
		// degraded rather than refuse to start.
		logger.Log.Warn("Failed to initialize redis, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("sikshyamap-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
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
