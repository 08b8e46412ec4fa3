// @title           Redirect Detector API
// @version         1.0
// @description     Resolves the final destination of HTTP redirect chains with bounded hops and body sizes.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/redirect_detector/docs"
	"github.com/vit0-9/redirect_detector/handlers"
	"github.com/vit0-9/redirect_detector/pkg/config"
	"github.com/vit0-9/redirect_detector/pkg/detector"
	"github.com/vit0-9/redirect_detector/pkg/metrics"
)

// App encapsulates all the components of the API server
type App struct {
	Router           *gin.Engine
	RedirectHandlers *handlers.RedirectHandlers
	HealthHandler    *handlers.HealthHandler
	Metrics          *metrics.PrometheusMetrics

	server *http.Server
}

// NewApp creates and initializes a new application instance
func NewApp(cfg config.Config, bounds detector.Bounds, client detector.ClientOptions) *App {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	met := metrics.NewMetrics(reg)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger())

	app := &App{
		Router: router,
		RedirectHandlers: handlers.NewRedirectHandlers(bounds, met,
			detector.WithClientOptions(client),
			detector.WithLogger(log.Logger),
		),
		HealthHandler: handlers.NewHealthHandler(),
		Metrics:       met,
	}
	app.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	app.setupRoutes()
	return app
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	urlV1 := app.Router.Group("/api/v1/url")
	{
		urlV1.GET("/resolve-redirect", app.RedirectHandlers.ResolveRedirectHandler)
		urlV1.POST("/resolve-redirect", app.RedirectHandlers.ResolveRedirectPostHandler)
	}

	app.Router.GET("/metrics", gin.WrapH(app.Metrics.Handler()))

	// This path is absolute from the host, not affected by @BasePath
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start runs the HTTP server and blocks until it stops. It returns
// http.ErrServerClosed after Shutdown.
func (app *App) Start(addr string) error {
	app.server.Addr = addr
	log.Info().Str("addr", addr).Msg("API server starting")
	return app.server.ListenAndServe()
}

func (app *App) Shutdown(ctx context.Context) error {
	return app.server.Shutdown(ctx)
}
