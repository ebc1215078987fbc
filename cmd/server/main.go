package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"scholarhub/docs"

	"scholarhub/internal/auth"
	"scholarhub/internal/cache"
	"scholarhub/internal/config"
	"scholarhub/internal/db"
	"scholarhub/internal/handler"
	"scholarhub/internal/logger"
	appmw "scholarhub/internal/middleware"
	"scholarhub/internal/payment"
	"scholarhub/internal/repository"
	"scholarhub/internal/router"
	"scholarhub/internal/service"
)

// @title ScholarHub API
// @version 1.0
// @description Scholarship listings, user roles and payment intents for the ScholarHub site.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Only enforced when the server runs with JWT_SECRET.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; relying on existing environment")
	}

	cfg := config.Load()
	log := logger.New(cfg.IsProduction())
	startedAt := time.Now()

	mgr := db.NewManager(dialer(cfg), log)
	if cfg.DBRequired {
		ctx, cancel := context.WithTimeout(context.Background(), 3*cfg.MongoConnectTimeout)
		_, err := mgr.Ensure(ctx)
		cancel()
		if err != nil {
			log.Error("database init", "error", err)
			os.Exit(1)
		}
	} else {
		// Warm the connection; requests retry on their own if this fails.
		go func() {
			if _, err := mgr.Ensure(context.Background()); err != nil {
				log.Warn("initial database connection failed", "error", err)
			}
		}()
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(mgr)
	scholarshipRepo := repository.NewScholarshipRepository(mgr)

	var gateway payment.Gateway
	if g := payment.NewStripeGateway(cfg.StripeSecretKey); g != nil {
		gateway = g
	} else {
		log.Warn("payment provider key not set; payment intents will fail")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	scholarshipService := service.NewScholarshipService(scholarshipRepo, cfg.FallbackEnabled, log)
	paymentService := service.NewPaymentService(gateway)

	var (
		jwtService *auth.JWTService
		resolver   auth.EmailResolver = auth.QueryEmailResolver{}
	)
	if cfg.JWTSecret != "" {
		jwtService = auth.NewJWTService(cfg.JWTSecret)
		resolver = auth.TokenEmailResolver{}
	}

	var cachePinger handler.Pinger
	if cacheClient.Enabled() {
		cachePinger = cacheClient
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Deps{
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
		Conns:       mgr,
		RoleGate:    appmw.NewRoleGate(resolver, userService, log),
		JWT:         jwtService,
		Health: handler.NewHealthHandler(mgr, cachePinger, handler.DiagConfig{
			Env:               cfg.AppEnv,
			MongoURISet:       cfg.MongoURI != "",
			MongoPartsSet:     cfg.MongoUser != "" && cfg.MongoPass != "",
			PaymentKeySet:     cfg.StripeSecretKey != "",
			JWTVerification:   jwtService != nil,
			FallbackEnabled:   cfg.FallbackEnabled,
			CacheConfigured:   cacheClient.Enabled(),
			AllowedCORSOrigin: cfg.CORSOrigins,
		}, startedAt),
		Users:       handler.NewUserHandler(userService),
		Scholarship: handler.NewScholarshipHandler(scholarshipService),
		Payment:     handler.NewPaymentHandler(paymentService),
	})

	configureSwagger(cfg.SwaggerHost)
	log.Info("swagger documentation available", "url", swaggerURL(cfg))

	go func() {
		log.Info("scholarhub listening", "addr", cfg.HTTPAddress())
		if err := e.Start(cfg.HTTPAddress()); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(ctxShutdown); err != nil {
		log.Error("graceful shutdown error", "error", err)
	}
	if err := mgr.Close(ctxShutdown); err != nil {
		log.Error("database disconnect", "error", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Error("cache close", "error", err)
	}
}

// dialer returns a DialFunc that reports missing configuration on every
// attempt, so the server still starts and /diag can explain the problem.
func dialer(cfg *config.Config) db.DialFunc {
	uri, err := cfg.MongoConnectionString()
	if err != nil {
		return func(context.Context) (*db.Connection, error) {
			return nil, err
		}
	}
	return db.Dial(db.Options{
		URI:            uri,
		ConnectTimeout: cfg.MongoConnectTimeout,
		SocketTimeout:  cfg.MongoSocketTimeout,
		MaxPoolSize:    cfg.MongoMaxPoolSize,
	})
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		return "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}

// configureSwagger points the served OpenAPI document at SWAGGER_HOST.
func configureSwagger(raw string) {
	if host := swaggerHost(raw); host != "" {
		docs.SwaggerInfo.Host = host
	}
}

// swaggerHost strips the scheme and trailing slash from SWAGGER_HOST, leaving
// the host[:port] form the OpenAPI document expects.
func swaggerHost(raw string) string {
	host := strings.TrimSpace(raw)
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	return strings.TrimSuffix(host, "/")
}
