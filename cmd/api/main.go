package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"

	"github.com/Martynas09/shop-browser/internal/basket"
	"github.com/Martynas09/shop-browser/internal/catalog"
	"github.com/Martynas09/shop-browser/internal/config"
	"github.com/Martynas09/shop-browser/internal/events"
	"github.com/Martynas09/shop-browser/internal/health"
	"github.com/Martynas09/shop-browser/internal/obs"
)

func main() {
	cfg := config.MustLoad()

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	if cfg.MetricsEnabled {
		obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)
	}

	tracingEnabled := cfg.TracingEnabled
	if tracingEnabled {
		shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
			ServiceName:   "shop-browser",
			Endpoint:      cfg.TracingEndpoint,
			SamplingRatio: cfg.TracingSampling,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
			tracingEnabled = false
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	products, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("load catalog")
	}
	catalogService, err := catalog.NewService(catalog.ServiceConfig{
		Products:     products,
		DefaultLimit: cfg.DefaultPageSize,
		MaxLimit:     cfg.MaxPageSize,
	})
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("initialise catalog service")
	}
	catalogHandler := catalog.NewHandler(catalog.HandlerConfig{Service: catalogService})
	for shop, count := range catalogService.CountByShop() {
		logger.Info().Str("shop", string(shop)).Int("products", count).Msg("catalog loaded")
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("parse redis url")
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("close redis")
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("ping redis")
	}

	store := basket.NewStore(redisClient, cfg.BasketKey)
	bus := &events.Bus{}
	bus.Subscribe(events.LogNotifier{Logger: logger})
	bus.Subscribe(events.MetricsNotifier{})

	basketService, err := basket.NewService(basket.ServiceConfig{
		Store:  store,
		Bus:    bus,
		Logger: logger,
	})
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("initialise basket service")
	}
	if err := basketService.Load(ctx); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("restore basket")
	}
	cancel()

	basketHandler := &basket.Handler{
		Svc:      basketService,
		Catalog:  catalogService,
		Validate: validator.New(),
	}

	var httpMetrics *obs.HTTPMetrics
	if cfg.MetricsEnabled {
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, nil, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if tracingEnabled {
		r.Use(obs.TracingMiddleware)
	}
	if httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	healthHandler := health.Handler{Store: store, Catalog: catalogService}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Get("/products", catalogHandler.Products)
		v.Get("/products/{id}", catalogHandler.ProductDetail)
		v.Get("/categories", catalogHandler.Categories)
		v.Get("/shops", catalogHandler.Shops)

		v.Route("/basket", func(b chi.Router) {
			b.Get("/", basketHandler.Get)
			b.Post("/items", basketHandler.AddItem)
			b.Route("/{shop}", func(s chi.Router) {
				s.Delete("/items/{id}", basketHandler.RemoveItem)
				s.Put("/items/{id}", basketHandler.UpdateQuantity)
				s.Post("/items/{id}/toggle", basketHandler.ToggleItem)
				s.Post("/clear-checked", basketHandler.ClearChecked)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		health.SetReady(true)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server exited unexpectedly")
		}
	case <-runCtx.Done():
		health.SetReady(false)
		logger.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown")
		}
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}
