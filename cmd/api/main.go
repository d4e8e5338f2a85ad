package main

// @title Nexus CRM API
// @version 1.0
// @description Lead pipeline, activity timeline, campaigns and content feeds.

// @host localhost:8080
// @BasePath /api/v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/jordanlanch/nexuscrm/config"
	"github.com/jordanlanch/nexuscrm/pkg/activity"
	"github.com/jordanlanch/nexuscrm/pkg/ai/llm"
	"github.com/jordanlanch/nexuscrm/pkg/analytics"
	apierrors "github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/jordanlanch/nexuscrm/pkg/api/handlers"
	"github.com/jordanlanch/nexuscrm/pkg/cache"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/events"
	"github.com/jordanlanch/nexuscrm/pkg/export"
	"github.com/jordanlanch/nexuscrm/pkg/feeds"
	"github.com/jordanlanch/nexuscrm/pkg/idgen"
	"github.com/jordanlanch/nexuscrm/pkg/insights"
	"github.com/jordanlanch/nexuscrm/pkg/jobs"
	"github.com/jordanlanch/nexuscrm/pkg/leadlifecycle"
	"github.com/jordanlanch/nexuscrm/pkg/leads"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/metrics"
	custommiddleware "github.com/jordanlanch/nexuscrm/pkg/middleware"
	"github.com/jordanlanch/nexuscrm/pkg/seed"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run wires the application and blocks until shutdown. Deferred cleanup
// (sentry flush, redis and broker close) runs on every return path.
func run() error {
	// Load configuration
	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel)
	apierrors.SetLogger(appLog)
	appLog.Info("configuration loaded", "environment", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			Debug:            cfg.SentryDebug,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
		})
		if err != nil {
			appLog.Warn("failed to initialize sentry", "error", err)
		} else {
			appLog.Info("sentry initialized", "environment", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Store, seeded at startup
	clock := domain.SystemClock{}
	ids := idgen.UUID{}
	crm := store.NewFromSeed(
		seed.Default(clock.Now(), cfg.Seed, cfg.SeedLeadCount),
		store.WithClock(clock),
		store.WithIDGenerator(ids),
		store.WithLogger(appLog),
	)

	// Prometheus metrics
	prometheusMetrics := metrics.New()
	crm.Subscribe(prometheusMetrics.StoreListener())

	deps := map[string]handlers.Pinger{}

	// Content suggestions, memoized in Redis when configured
	var suggester domain.ContentSuggester = insights.TemplateSuggester{}
	if cfg.OpenAIAPIKey != "" {
		suggester = insights.NewLLMSuggester(llm.NewOpenAIClient(llm.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}, appLog))
		appLog.Info("openai content suggestions enabled", "model", cfg.OpenAIModel)
	}
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewClient(cfg.RedisURL, appLog)
		if err != nil {
			appLog.Warn("redis unavailable, insight cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			cached := insights.NewCachedSuggester(suggester, redisClient, cfg.InsightCacheTTL, appLog,
				insights.WithObserver(prometheusMetrics))
			crm.Subscribe(cached.Listener())
			suggester = cached
			deps["cache"] = redisClient
		}
	}

	// Outbound events
	publisherCtx, stopPublisher := context.WithCancel(context.Background())
	defer stopPublisher()
	publisherDone := make(chan struct{})
	if cfg.AMQPURL != "" {
		broker, err := events.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			appLog.Warn("rabbitmq unavailable, event publishing disabled", "error", err)
			close(publisherDone)
		} else {
			defer broker.Close()
			publisher := events.NewPublisher(broker.Ch, ids, appLog, cfg.EventBufferSize)
			crm.Subscribe(publisher.Listener())
			deps["broker"] = broker
			go func() {
				defer close(publisherDone)
				publisher.Run(publisherCtx)
			}()
		}
	} else {
		close(publisherDone)
	}

	// Services
	leadService := leads.NewService(crm, leads.NewBuilder(ids, clock), appLog)
	lifecycleService := leadlifecycle.NewService(crm, appLog)
	activityService := activity.NewService(crm, ids, clock, suggester, appLog,
		activity.WithInsightTimeout(cfg.InsightTimeout))
	feedService := feeds.NewService(crm, appLog)
	analyticsService := analytics.NewService(crm)
	exportService := export.NewService(cfg.PhoneRegion)

	// Cron jobs
	cronManager := jobs.NewCronManager(jobs.NewFollowUpMonitor(crm, clock, prometheusMetrics, appLog), analyticsService, appLog)
	if err := cronManager.SetupJobs(cfg.FollowUpCron, cfg.StatsCron); err != nil {
		appLog.Error("failed to schedule jobs", "error", err)
		return err
	}
	cronManager.Start()

	// Handlers
	healthHandler := handlers.NewHealthHandler(crm, clock, cfg.APIEnvironment, deps)
	leadHandler := handlers.NewLeadHandler(leadService)
	pipelineHandler := handlers.NewPipelineHandler(lifecycleService)
	activityHandler := handlers.NewActivityHandler(activityService)
	feedHandler := handlers.NewFeedHandler(feedService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	reportHandler := handlers.NewReportHandler(crm, leadService, analyticsService, exportService, clock, prometheusMetrics)
	sessionHandler := handlers.NewSessionHandler(crm)

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	defer globalRateLimiter.Close()
	endpointRateLimiter := custommiddleware.NewPerEndpointRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	defer endpointRateLimiter.Close()
	endpointRateLimiter.SetEndpointLimit("POST /api/v1/leads/:id/insights", cfg.InsightRateLimitPerMinute, 2)
	endpointRateLimiter.SetEndpointLimit("GET /api/v1/leads/export", 10, 2)
	endpointRateLimiter.SetEndpointLimit("GET /api/v1/reports/team/export", 10, 2)

	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				appLog.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error)
				return nil
			}
			appLog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))
	securityHeaders := custommiddleware.SecurityHeadersConfig{}
	if cfg.IsProduction() {
		securityHeaders.HSTSMaxAge = 31536000
	}
	e.Use(custommiddleware.SecurityHeaders(securityHeaders))
	e.Use(middleware.Gzip())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Public endpoints
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(prometheusMetrics.Handler()))

	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))
	v1.Use(endpointRateLimiter.RateLimitMiddleware())

	leadsGroup := v1.Group("/leads")
	{
		leadsGroup.GET("", leadHandler.List)
		leadsGroup.POST("", leadHandler.Create)
		leadsGroup.GET("/export", reportHandler.ExportLeads) // before /:id
		leadsGroup.GET("/:id", leadHandler.Get)
		leadsGroup.PATCH("/:id", leadHandler.Update)
		leadsGroup.POST("/:id/stage", pipelineHandler.MoveStage)
		leadsGroup.GET("/:id/stage-history", pipelineHandler.History)
		leadsGroup.GET("/:id/activities", activityHandler.List)
		leadsGroup.POST("/:id/activities", activityHandler.Log)
		leadsGroup.POST("/:id/notes", activityHandler.AddNote)
		leadsGroup.POST("/:id/insights", activityHandler.RequestInsight)
	}

	pipelineGroup := v1.Group("/pipeline")
	{
		pipelineGroup.GET("/board", pipelineHandler.Board)
		pipelineGroup.POST("/drop", pipelineHandler.Drop)
	}

	feedsGroup := v1.Group("/feeds")
	{
		feedsGroup.GET("", feedHandler.List)
		feedsGroup.GET("/:id", feedHandler.Get)
		feedsGroup.POST("/:id/links", feedHandler.Link)
		feedsGroup.GET("/:id/leads", feedHandler.LinkedLeads)
	}

	v1.GET("/campaigns", analyticsHandler.Campaigns)
	v1.GET("/dashboard", analyticsHandler.Dashboard)
	v1.GET("/analytics/funnel", analyticsHandler.Funnel)
	v1.GET("/analytics/sources", analyticsHandler.Sources)

	v1.GET("/reports/team", reportHandler.Team)
	v1.GET("/reports/team/export", reportHandler.ExportTeam)

	sessionGroup := v1.Group("/session")
	{
		sessionGroup.GET("", sessionHandler.Get)
		sessionGroup.PUT("/user", sessionHandler.SetUser)
		sessionGroup.PUT("/selected-lead", sessionHandler.SetSelectedLead)
		sessionGroup.PUT("/add-lead-modal", sessionHandler.SetAddLeadModal)
	}

	v1.GET("/users", sessionHandler.Users)
	v1.GET("/users/:id", sessionHandler.User)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	appLog.Info("nexus crm api starting",
		"address", address,
		"rate_limit_rpm", cfg.RateLimitRequestsPerMinute,
		"rate_limit_burst", cfg.RateLimitBurst,
		"followup_cron", cfg.FollowUpCron,
	)

	// Wait for interrupt signal or a server failure, then shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	runErr := serve(e, address, quit)
	if runErr != nil {
		appLog.Error("failed to start server", "error", runErr)
	} else {
		appLog.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error("server forced to shutdown", "error", err)
	}

	// Stop cron jobs and wait for running ones
	select {
	case <-cronManager.Stop().Done():
	case <-ctx.Done():
	}

	// Let background insight requests finish
	activityService.Wait()

	// Flush pending events
	stopPublisher()
	<-publisherDone

	appLog.Info("server gracefully stopped")
	return runErr
}

// serve starts e on address and blocks until quit fires or the listener
// fails. A failure is returned; a quit yields nil.
func serve(e *echo.Echo, address string, quit <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-quit:
		return nil
	case err := <-serverErr:
		return err
	}
}
