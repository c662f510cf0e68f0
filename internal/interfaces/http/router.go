package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountusecases "atrium/internal/application/account/usecases"
	formusecases "atrium/internal/application/forms/usecases"
	"atrium/internal/infrastructure/auth"
	"atrium/internal/infrastructure/cache"
	"atrium/internal/infrastructure/config"
	"atrium/internal/infrastructure/repository"
	"atrium/internal/interfaces/http/handlers"
	"atrium/internal/interfaces/http/middleware"
	"atrium/internal/shared/authorization"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

// oauthStateTTL bounds how long an authorization round-trip may take.
const oauthStateTTL = 10 * time.Minute

// Router wires every handler into the Gin engine.
type Router struct {
	engine         *gin.Engine
	db             *gorm.DB
	cfg            *config.Config
	authHandler    *handlers.AuthHandler
	accountHandler *handlers.AccountHandler
	formHandler    *handlers.FormHandler
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	registerCustomValidators()

	accountRepo := repository.NewAccountRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	oauthRegistry := auth.NewOAuthRegistry(&cfg.OAuth)
	stateStore := cache.NewRedisStateStore(redisClient, "oauth:state:", oauthStateTTL)

	initiateOAuthUC := accountusecases.NewInitiateOAuthLoginUseCase(oauthRegistry, stateStore, log)
	handleOAuthUC := accountusecases.NewHandleOAuthCallbackUseCase(
		accountRepo, oauthRegistry, stateStore, jwtService, cfg.Auth.AdminEmailSet(), log,
	)
	getCurrentUC := accountusecases.NewGetCurrentAccountUseCase(accountRepo, log)
	listAccountsUC := accountusecases.NewListAccountsUseCase(accountRepo, log)
	deleteAccountUC := accountusecases.NewDeleteAccountUseCase(accountRepo, log)
	updateStatusUC := accountusecases.NewUpdateAccountStatusUseCase(accountRepo, log)

	submitFormUC := formusecases.NewSubmitFormUseCase(submissionRepo, log)
	listSubmissionsUC := formusecases.NewListSubmissionsUseCase(submissionRepo, log)
	deleteSubmissionUC := formusecases.NewDeleteSubmissionUseCase(submissionRepo, log)

	authHandler := handlers.NewAuthHandler(
		initiateOAuthUC,
		handleOAuthUC,
		jwtService,
		cfg.Auth.JWT,
		cfg.Auth.Cookie,
		cfg.Server.FrontendCallbackURL,
		log,
	)
	accountHandler := handlers.NewAccountHandler(getCurrentUC, listAccountsUC, deleteAccountUC, updateStatusUC, log)
	formHandler := handlers.NewFormHandler(submitFormUC, listSubmissionsUC, deleteSubmissionUC, log)

	return &Router{
		engine:         engine,
		db:             db,
		cfg:            cfg,
		authHandler:    authHandler,
		accountHandler: accountHandler,
		formHandler:    formHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)

	api := r.engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.GET("/oauth/:provider", r.authHandler.InitiateOAuth)
		authGroup.GET("/oauth/:provider/callback", r.authHandler.HandleOAuthCallback)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
	}

	api.GET("/currentAccount", r.authMiddleware.RequireAuth(), r.accountHandler.CurrentAccount)

	api.POST("/forms", r.authMiddleware.RequireAuth(), r.formHandler.SubmitForm)

	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/accounts", r.accountHandler.ListAccounts)
		admin.DELETE("/accounts/:id", r.accountHandler.DeleteAccount)
		admin.PATCH("/accounts/:id/status", r.accountHandler.UpdateAccountStatus)

		admin.GET("/forms", r.formHandler.ListSubmissions)
		admin.DELETE("/forms/:id", r.formHandler.DeleteSubmission)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// healthCheck reports process and database liveness.
func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
