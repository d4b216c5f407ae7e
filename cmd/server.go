package main

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/questionbank/config"
	"github.com/lshigami/questionbank/database"
	_ "github.com/lshigami/questionbank/docs"
	"github.com/lshigami/questionbank/internal/controller"
	"github.com/lshigami/questionbank/internal/logger"
	"github.com/lshigami/questionbank/internal/monitoring"
	"github.com/lshigami/questionbank/internal/repository"
	"github.com/lshigami/questionbank/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.File)
	monitoring.Init()

	app := fx.New(appOptions(cfg))
	if err := app.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return app.Stop(stopCtx)
}

func appOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewSetupRepository,
			repository.NewMCOptionRepository,
			repository.NewRubricRepository,
			repository.NewQuestionRepository,
		),

		fx.Provide(
			service.NewSetupService,
			service.NewMCOptionService,
			service.NewRubricService,
			service.NewQuestionService,
		),

		fx.Provide(controller.NewController),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))

	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))
	r.Use(monitoring.MetricsMiddleware())

	r.GET("/metrics", monitoring.PrometheusHandler())
	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// requestLogger writes one zerolog event per request. Client errors are
// logged at warn and server errors at error.
func requestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		event := log.Info()
		switch {
		case param.StatusCode >= http.StatusInternalServerError:
			event = log.Error()
		case param.StatusCode >= http.StatusBadRequest:
			event = log.Warn()
		}
		event.
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Int("body_size", param.BodySize).
			Str("error_message", param.ErrorMessage).
			Msg("request")
		return ""
	})
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	}
	return gin.DebugMode
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// RegisterRoutesAndStartServer mounts the API and ties the HTTP server and
// the database handle to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
	db *gorm.DB,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Question bank server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			return database.Close(db)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.AutoMigrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
