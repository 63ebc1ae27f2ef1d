package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/config"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/handler"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/middleware"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/router"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/api/view"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/client"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/session"
	applogger "github.com/varunkasnia/LLM-Internship-Frontend/pkg/logger"
	"github.com/varunkasnia/LLM-Internship-Frontend/pkg/redis"
)

func main() {
	// 0. .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	// 1. config
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Redis (optional: on failure run without the write rate limit)
	var rdb *redis.Client
	var limiter middleware.RateLimiter
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, write rate limit disabled", zap.Error(err))
			rdb = nil
		} else {
			limiter = rdb
		}
	}

	// 4. wiring: Client -> Service -> Session -> Handler
	api := client.New(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, logger)
	svc := service.NewService(api, logger, nil)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	registry := session.NewRegistry(svc.NewScreens, cfg.Session.IdleTimeout, logger)
	go registry.Run(ctx)
	sessions := session.NewManager(&cfg.Session, registry, logger)

	tmpl, err := view.Parse()
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	h := handler.NewHandler(svc)

	// 5. router
	engine := router.Setup(cfg, h, sessions, limiter, tmpl, logger)

	// 6. HTTP server (graceful shutdown)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 7. wait for a signal, then shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	stop()

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
