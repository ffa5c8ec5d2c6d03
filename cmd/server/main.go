// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rkarim/chatcart/internal/adapters/gateway"
	"github.com/rkarim/chatcart/internal/adapters/httpserver"
	"github.com/rkarim/chatcart/internal/adapters/llm"
	"github.com/rkarim/chatcart/internal/adapters/memory"
	"github.com/rkarim/chatcart/internal/adapters/redis"
	"github.com/rkarim/chatcart/internal/application"
	"github.com/rkarim/chatcart/internal/config"
	"github.com/rkarim/chatcart/internal/ports"
	"github.com/rkarim/chatcart/pkg/auth"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set, free-text classification will fall back to greet")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache ports.CachePort
	if cfg.RedisAddr != "" {
		c := redis.NewCache(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		if err := c.Ping(ctx); err != nil {
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = c
	} else {
		log.Info("REDIS_ADDR not set, using in-memory cache")
		cache = memory.NewCache(cfg.CacheTTL)
	}

	gw := gateway.New(cfg.CategoryAPIURL, cfg.ItemsAPIBase, cfg.BillAPIURL, cfg.UpstreamTimeout, log)
	completer := llm.NewCompleter(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	catalog := application.NewCatalogService(gw, cache, log)
	classifier := application.NewClassifier(catalog, completer, log)
	chat := application.NewChatService(catalog, gw, classifier, log)

	sessions := application.NewSessionStore(cfg.SessionTTL)
	go sessions.Sweep(ctx, time.Minute)

	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	srv := httpserver.New(chat, sessions, tokens, cache, cfg.AllowedOrigin, log)

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.Infof("listening on %s", cfg.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
