package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tungtase04539/ai-news/internal/articles"
	"github.com/tungtase04539/ai-news/internal/auth"
	"github.com/tungtase04539/ai-news/internal/cache"
	"github.com/tungtase04539/ai-news/internal/config"
	"github.com/tungtase04539/ai-news/internal/courses"
	"github.com/tungtase04539/ai-news/internal/handlers"
	"github.com/tungtase04539/ai-news/internal/middleware"
	"github.com/tungtase04539/ai-news/internal/supabase"
	"github.com/tungtase04539/ai-news/internal/tools"
	"github.com/tungtase04539/ai-news/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	// One check decides every strategy: with Supabase configured the entity
	// routes talk to PostgREST and auth goes through GoTrue; without it the
	// entity routes answer 503 and auth runs the file-backed demo flow.
	supaClient := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	var (
		courseHandler  *courses.Handler
		articleHandler *articles.Handler
		toolHandler    *tools.Handler
	)
	if supaClient != nil {
		logger.Info("supabase configured", slog.String("url", cfg.SupabaseURL))
		courseService := courses.NewService(courses.NewSupabaseRepository(supaClient))
		articleService := articles.NewService(articles.NewSupabaseRepository(supaClient), cfg.Timezone)
		toolService := tools.NewService(tools.NewSupabaseRepository(supaClient))
		courseHandler = courses.NewHandler(courseService, val, logger, cacheStore, cacheTTL)
		articleHandler = articles.NewHandler(articleService, val, logger, cacheStore, cacheTTL)
		toolHandler = tools.NewHandler(toolService, val, logger, cacheStore, cacheTTL)
	} else {
		logger.Warn("supabase not configured, running in demo mode")
		courseHandler = courses.NewHandler(nil, val, logger, cacheStore, cacheTTL)
		articleHandler = articles.NewHandler(nil, val, logger, cacheStore, cacheTTL)
		toolHandler = tools.NewHandler(nil, val, logger, cacheStore, cacheTTL)
	}

	if cfg.SessionSecret == "" {
		logger.Error("SESSION_SECRET is required")
		os.Exit(1)
	}
	jwtManager := &auth.Manager{
		Secret: []byte(cfg.SessionSecret),
		TTL:    time.Duration(cfg.SessionTTLMinutes) * time.Minute,
		Issuer: "ai-news",
	}

	var authenticator auth.Authenticator
	if supaClient != nil {
		authenticator = auth.NewSupabaseAuthenticator(supaClient)
	} else {
		authenticator = auth.NewLocalAuthenticator(cfg.DemoSessionFile)
	}
	authHandler := auth.NewHandler(authenticator, jwtManager, val, logger, cfg.FrontendOrigin+"/auth/callback", cfg.CookieSecure)

	server := &handlers.Server{
		Cfg:      cfg,
		Log:      logger,
		Supabase: supaClient,
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	writeLimiter := middleware.NewRateLimiter(cfg.RateLimitWrites, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", server.Health)

		api.Route("/auth", func(a chi.Router) {
			a.Post("/login", authHandler.Login)
			a.Post("/register", authHandler.Register)
			a.Post("/logout", authHandler.Logout)
			a.Get("/session", authHandler.Session)
			a.Get("/google", authHandler.Google)
		})

		api.Get("/courses", courseHandler.List)
		api.Get("/courses/{id}", courseHandler.Get)
		api.With(writeLimiter.Middleware).Post("/courses", courseHandler.Create)
		api.With(writeLimiter.Middleware).Put("/courses/{id}", courseHandler.Update)
		api.With(writeLimiter.Middleware).Delete("/courses/{id}", courseHandler.Delete)

		api.Get("/articles", articleHandler.List)
		api.Get("/articles/{id}", articleHandler.Get)
		api.With(writeLimiter.Middleware).Post("/articles", articleHandler.Create)
		api.With(writeLimiter.Middleware).Put("/articles/{id}", articleHandler.Update)
		api.With(writeLimiter.Middleware).Delete("/articles/{id}", articleHandler.Delete)

		api.Get("/tools", toolHandler.List)
		api.Get("/tools/{id}", toolHandler.Get)
		api.With(writeLimiter.Middleware).Post("/tools", toolHandler.Create)
		api.With(writeLimiter.Middleware).Put("/tools/{id}", toolHandler.Update)
		api.With(writeLimiter.Middleware).Delete("/tools/{id}", toolHandler.Delete)

		api.With(writeLimiter.Middleware).Post("/upload", server.Upload)
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
