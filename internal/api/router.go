package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/jobmatch/jobmatch-api/internal/api/handler"
	"github.com/jobmatch/jobmatch-api/internal/api/middleware"
	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
	"github.com/jobmatch/jobmatch-api/internal/core/service"
	"github.com/jobmatch/jobmatch-api/internal/infrastructure/config"
	pgrepo "github.com/jobmatch/jobmatch-api/internal/infrastructure/db/postgres"
	redisstore "github.com/jobmatch/jobmatch-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// assistantBackend may be nil; the assistant then serves canned replies only.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, files ports.FileStore, assistantBackend ports.Assistant, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit(cfg.Uploads.MaxBytes))
	e.Use(echoprometheus.NewMiddleware("jobmatch"))

	// --- Dependencies ---
	authRepo := pgrepo.NewAuthRepository(pool)
	profileRepo := pgrepo.NewProfileRepository(pool)
	jobRepo := pgrepo.NewJobRepository(pool)
	appRepo := pgrepo.NewApplicationRepository(pool)
	resourceRepo := pgrepo.NewResourceRepository(pool)
	sessions := redisstore.NewSessionStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(authRepo, profileRepo, sessions, log)
	profileService := service.NewProfileService(profileRepo, authRepo, jobRepo, files, log)
	jobService := service.NewJobService(jobRepo, files, log)
	appService := service.NewApplicationService(appRepo, jobRepo, profileRepo, log)
	resourceService := service.NewResourceService(resourceRepo, files, log)
	assistantService := service.NewAssistantService(assistantBackend, cfg.Gemini.Timeout, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	fileHandler := handler.NewFileHandler(profileService)

	session := middleware.Session(sessions)
	seekerOnly := middleware.RBAC(domain.RoleSeeker)
	companyOnly := middleware.RBAC(domain.RoleCompany)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/api/forgot/check", authHandler.ForgotCheck)
	e.POST("/api/forgot/reset", authHandler.ForgotReset)

	// --- Authenticated routes ---
	e.POST("/logout", authHandler.Logout, session)
	e.POST("/api/password/change", authHandler.ChangePassword, session)

	e.GET("/api/profile", profileHandler.Get, session)
	e.POST("/api/profile", profileHandler.Update, session)
	e.GET("/view_resume/:email", fileHandler.ViewResume, session)

	e.GET("/api/job_posts", jobHandler.Search, session)
	e.GET("/api/my_job_posts", jobHandler.ListMine, session, companyOnly)
	e.POST("/api/job_posts", jobHandler.Create, session, companyOnly)
	e.PUT("/api/job_posts/:id", jobHandler.Update, session, companyOnly)
	e.DELETE("/api/job_posts/:id", jobHandler.Delete, session, companyOnly)
	e.POST("/api/job_post/:id/toggle", jobHandler.Toggle, session, companyOnly)

	e.POST("/apply/:id", appHandler.Apply, session, seekerOnly)
	e.GET("/api/seeker_status", appHandler.SeekerStatus, session, seekerOnly)
	e.POST("/api/accept", appHandler.Accept, session, companyOnly)
	e.POST("/api/reject", appHandler.Reject, session, companyOnly)
	e.GET("/api/active_applications", appHandler.ActiveForCompany, session, companyOnly)
	e.GET("/api/accepted_applications", appHandler.AcceptedForCompany, session, companyOnly)

	e.GET("/api/resources", resourceHandler.List, session)
	e.POST("/api/resources", resourceHandler.Create, session, companyOnly)
	e.PUT("/api/resources/:id", resourceHandler.Update, session, companyOnly)
	e.DELETE("/api/resources/:id", resourceHandler.Delete, session, companyOnly)

	e.POST("/api/chatbot", assistantHandler.Chat, session)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
