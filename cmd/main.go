package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/evamed/evamed/config"
	"github.com/evamed/evamed/database"
	_ "github.com/evamed/evamed/docs" // Swagger docs
	"github.com/evamed/evamed/internal/cache"
	"github.com/evamed/evamed/internal/catalog"
	adminctrl "github.com/evamed/evamed/internal/controller/admin"
	candidatectrl "github.com/evamed/evamed/internal/controller/candidate"
	"github.com/evamed/evamed/internal/logger"
	"github.com/evamed/evamed/internal/middleware"
	"github.com/evamed/evamed/internal/model"
	"github.com/evamed/evamed/internal/repository"
	"github.com/evamed/evamed/internal/service"
)

// @title EvaMed Evaluation API
// @version 1.0
// @description Psychometric evaluation sessions for security personnel: tokenized candidate links, one-question-at-a-time delivery, and scored reports.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey AdminToken
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewQuestionBank,      // Provides *catalog.Catalog
			NewReportCache,       // Provides cache.ReportCache (nil when redis is not configured)
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewEvaluationRepository,
			repository.NewAnswerRepository,
			repository.NewResultRepository,
		),

		// Services layer
		fx.Provide(
			service.NewEvaluationService,
			service.NewSessionService,
			service.NewAnswerService,
			service.NewResultService,
			func(cfg *config.Config) (service.AuthService, error) {
				return service.NewAuthService(
					cfg.Auth.AdminPassword,
					cfg.Auth.AdminPasswordHash,
					cfg.Auth.JWTSecret,
					time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
				)
			},
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewAuthController,
			adminctrl.NewEvaluationController,
			candidatectrl.NewSessionController,
			candidatectrl.NewResultController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewQuestionBank loads and validates the question catalog; a broken bank
// aborts startup instead of surfacing mid-session.
func NewQuestionBank(cfg *config.Config) (*catalog.Catalog, error) {
	bank, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	log.Info().Int("questions", bank.Size()).Int("areas", len(bank.Areas)).Msg("Question bank loaded")
	return bank, nil
}

// NewReportCache wires the optional redis-backed report cache.
func NewReportCache(cfg *config.Config) cache.ReportCache {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("Report cache disabled (no REDIS_ADDR configured)")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	return cache.NewReportCache(client, time.Duration(cfg.Redis.ReportTTLMinute)*time.Minute)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *adminctrl.AuthController,
	evaluationCtrl *adminctrl.EvaluationController,
	sessionCtrl *candidatectrl.SessionController,
	resultCtrl *candidatectrl.ResultController,
) {
	// Admin routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	adminAPIGroup.POST("/auth", authCtrl.Login)
	{
		evaluationsGroup := adminAPIGroup.Group("/evaluations")
		evaluationsGroup.Use(middleware.AdminJWT(cfg.Auth.JWTSecret))
		evaluationsGroup.POST("", evaluationCtrl.CreateEvaluation)
		evaluationsGroup.GET("", evaluationCtrl.ListEvaluations)
		evaluationsGroup.GET("/:token", evaluationCtrl.GetEvaluation)
	}

	// Candidate routes (prefixed with /api/v1)
	candidateAPIGroup := router.Group("/api/v1")
	{
		evalGroup := candidateAPIGroup.Group("/eval/:token")
		evalGroup.GET("/next-question", sessionCtrl.NextQuestion)
		evalGroup.GET("/progress", sessionCtrl.Progress)
		evalGroup.POST("/response", sessionCtrl.SubmitAnswer)

		candidateAPIGroup.GET("/result/:token", resultCtrl.GetReport)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EvaMed API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Evaluation{},
		&model.Answer{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
