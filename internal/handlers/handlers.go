package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"jobportal/api/internal/config"
	"jobportal/api/internal/middleware"
	"jobportal/api/internal/models"
	"jobportal/api/internal/repository"
	"jobportal/api/internal/service"
	"jobportal/api/internal/storage"
)

type HandlerSet struct {
	log           zerolog.Logger
	cfg           *config.AppConfig
	authService   *service.AuthService
	resumeService *service.ResumeService
	db            *pgxpool.Pool
	cache         *redis.Client
	users         *repository.UserRepository
	jobs          *repository.JobRepository
	applications  *repository.ApplicationRepository
	saved         *repository.SavedJobRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	savedRepo := repository.NewSavedJobRepository(db)
	auth := service.NewAuthService(userRepo, cfg, log)
	resumes := service.NewResumeService(userRepo, store, cfg, log)

	return HandlerSet{
		log:           log,
		cfg:           cfg,
		authService:   auth,
		resumeService: resumes,
		db:            db,
		cache:         cache,
		users:         userRepo,
		jobs:          jobRepo,
		applications:  applicationRepo,
		saved:         savedRepo,
	}
}

func (h HandlerSet) Routes(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/me", middleware.Auth(h.cfg, h.users), h.Me)

	users := v1.Group("/users")
	users.Use(middleware.Auth(h.cfg, h.users))
	users.GET("/me", h.Me)
	users.PUT("/me", h.UpdateProfile)
	users.PUT("/me/password", h.ChangePassword)
	users.POST("/me/resume", h.UploadResume)
	users.GET("/me/saved", h.ListSavedJobs)
	users.POST("/me/saved/:jobId", h.SaveJob)
	users.DELETE("/me/saved/:jobId", h.UnsaveJob)

	// Download auth is the HMAC signature in the URL itself.
	v1.GET("/resumes/download", h.DownloadResume)

	jobs := v1.Group("/jobs")
	jobs.GET("", h.ListJobs)
	jobs.GET("/recommended", middleware.Auth(h.cfg, h.users), h.RecommendedJobs)
	jobs.GET("/:id", h.GetJob)

	employerOnly := jobs.Group("")
	employerOnly.Use(
		middleware.Auth(h.cfg, h.users),
		middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin),
	)
	employerOnly.POST("", h.CreateJob)
	employerOnly.PUT("/:id", h.UpdateJob)
	employerOnly.DELETE("/:id", h.DeleteJob)

	applications := v1.Group("/applications")
	applications.Use(middleware.Auth(h.cfg, h.users))
	applications.POST("", middleware.RequireRoles(models.UserRoleJobseeker), h.SubmitApplication)
	applications.GET("/me", h.ListMyApplications)

	reviewerOnly := applications.Group("")
	reviewerOnly.Use(middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
	reviewerOnly.GET("/job/:jobId", h.ListJobApplications)
	reviewerOnly.PATCH("/:id", h.UpdateApplication)

	analytics := v1.Group("/analytics")
	analytics.Use(middleware.Auth(h.cfg, h.users))
	analytics.GET("/summary", h.AnalyticsSummary)

	v1.POST("/text-generator", h.GenerateText)
}
