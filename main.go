package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"ticket-claimer/internal/claims"
	"ticket-claimer/internal/config"
	"ticket-claimer/internal/engine"
	"ticket-claimer/internal/eventer"
	"ticket-claimer/internal/handler"
	"ticket-claimer/internal/logger"
	"ticket-claimer/internal/purchase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	set, closeSet, err := openClaims(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("opening claim store", zap.Error(err))
	}
	defer closeSet()

	client := eventer.NewClient(eventer.Options{
		BaseURL: cfg.Domain,
		Seller:  cfg.Seller,
		Timeout: cfg.HTTPTimeout,
	}, zl.Named("eventer"))

	eng := engine.New(client, purchase.NewSubmitter(client, zl.Named("purchase")), set, cfg.Registrant, zl.Named("engine"))
	poller := engine.NewPoller(eng, cfg.PollInterval, zl.Named("poller"))

	if cfg.StatusAddr != "" {
		srv := &fasthttp.Server{Handler: handler.New(poller), Name: "ticket-claimer"}
		go func() {
			zl.Info("status server listening", zap.String("addr", cfg.StatusAddr))
			if err := srv.ListenAndServe(cfg.StatusAddr); err != nil {
				zl.Error("status server failed", zap.Error(err))
			}
		}()
		defer srv.ShutdownWithContext(context.Background())
	}

	zl.Info("ticket claimer starting",
		zap.String("domain", cfg.Domain),
		zap.String("seller", cfg.Seller),
		zap.Duration("interval", cfg.PollInterval),
		zap.String("claim_store", cfg.ClaimStore),
	)
	poller.Run(ctx)
}

// openClaims returns the configured claim set and a function releasing it.
func openClaims(ctx context.Context, cfg config.Config, zl *zap.Logger) (claims.Set, func(), error) {
	switch cfg.ClaimStore {
	case config.StoreRedis:
		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		rs, err := claims.NewRedisSet(dialCtx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		ids, err := rs.IDs(dialCtx)
		if err != nil {
			rs.Close()
			return nil, nil, err
		}
		zl.Info("claims loaded", zap.String("redis_key", cfg.Redis.Key), zap.Int("count", len(ids)))
		return rs, func() { rs.Close() }, nil

	case config.StoreFile:
		fs, err := claims.Load(cfg.ClaimDBPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			zl.Warn("claim file unreadable, starting empty", zap.String("path", cfg.ClaimDBPath), zap.Error(err))
		}
		zl.Info("claims loaded", zap.String("path", cfg.ClaimDBPath), zap.Int("count", fs.Len()))
		return fs, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown claim store %q", cfg.ClaimStore)
}
