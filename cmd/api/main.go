package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"storefront-demo/internal/catalog"
	"storefront-demo/internal/config"
	"storefront-demo/internal/db"
	"storefront-demo/internal/httpserver"
	"storefront-demo/internal/imagesearch"
	productrepo "storefront-demo/internal/repository/product"
	cartsvc "storefront-demo/internal/service/cart"
	chatsvc "storefront-demo/internal/service/chat"
	productsvc "storefront-demo/internal/service/product"
	"storefront-demo/internal/session"
	"storefront-demo/internal/settings"
)

const settingsTTL = 30 * 24 * time.Hour

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var checks []httpserver.ReadinessCheck

	var dbpool *pgxpool.Pool
	if cfg.DBConnString != "" {
		var err error
		dbpool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer dbpool.Close()
		checks = append(checks, httpserver.ReadinessCheck{Name: "db", Ping: dbpool.Ping})
	}

	var settingsStore settings.Store = settings.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		redisStore := settings.NewRedisStore(rdb, settingsTTL)
		if err := redisStore.Ping(ctx); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		settingsStore = redisStore
		checks = append(checks, httpserver.ReadinessCheck{Name: "redis", Ping: redisStore.Ping})
	}

	cat := catalog.New(catalog.SampleProducts())
	var productService *productsvc.Service
	if dbpool != nil {
		productService = productsvc.New(cat, productrepo.NewPostgres(dbpool, logger), logger)
	} else {
		productService = productsvc.New(cat, nil, logger)
	}
	count, err := productService.Load(ctx)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded products=%d", count)

	sessions := session.NewManager(session.Deps{
		Products:   cat,
		Settings:   settingsStore,
		AI:         cfg.AI,
		ReplyDelay: cfg.ReplyDelay,
		Logger:     logger,
	}, cfg.SessionTTL)
	go sessions.Run(ctx, time.Minute)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, checks, httpserver.Deps{
		Sessions:    sessions,
		ProductSvc:  productService,
		CartSvc:     cartsvc.New(productService),
		ChatSvc:     chatsvc.New(sessions, logger),
		ImageSvc:    imagesearch.NewClient(cfg.ImageSearchURL, nil, logger),
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
