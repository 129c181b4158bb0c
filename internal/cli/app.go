package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"logreport/config"
	_ "logreport/docs"
	"logreport/internal/controller"
	"logreport/internal/ingest"
	"logreport/internal/parser"
	"logreport/internal/report"
	"logreport/internal/service"
)

// coreModule provides the ingestion and reporting pipeline.
func coreModule(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			parser.NewLineParser,
			ingest.NewLoader,
			service.NewReportService,
			report.NewRenderer,
		),
	)
}

// runApp starts app, waits for a shutdown signal and stops it.
func runApp(app *fx.App) error {
	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	log.Info().Msg("Stopping logreport")
	return app.Stop(stopCtx)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	reportController *controller.ReportController,
) {
	controller.RegisterReportRoutes(router, reportController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Str("addr", server.Addr).Str("base_dir", cfg.Ingest.BaseDir).Msg("Serving log reports")
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Str("addr", server.Addr).Msg("Report server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Str("addr", server.Addr).Msg("Draining report requests")
			return server.Shutdown(ctx)
		},
	})
}
