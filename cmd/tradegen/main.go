// Command tradegen drives the mock API with a stream of random trades.
package main

import (
	"context"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("tradegen: config: %v", err)
	}
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Base context canceled by SIGINT/SIGTERM
	baseCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Apply TTL unless stay-alive requested or TTL <= 0
	ctx := baseCtx
	if !cfg.StayAlive && cfg.TTL > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(baseCtx, cfg.TTL)
		defer cancel()
	}

	api := newAPIClient(cfg.APIURL, cfg.Timeout)

	users, err := api.users(ctx)
	if err != nil {
		logger.Fatal("discover users", zap.Error(err))
	}
	instruments, err := api.instruments(ctx)
	if err != nil {
		logger.Fatal("discover instruments", zap.Error(err))
	}
	if len(users) == 0 || len(instruments) == 0 {
		logger.Fatal("nothing to trade", zap.Int("users", len(users)), zap.Int("instruments", len(instruments)))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := newGenerator(rng, users, instruments, cfg.InvalidRatio)

	logger.Info("tradegen started",
		zap.String("api", cfg.APIURL),
		zap.Int("rate", cfg.Rate),
		zap.Bool("stay_alive", cfg.StayAlive),
		zap.Duration("ttl", cfg.TTL),
		zap.Float64("invalid_ratio", cfg.InvalidRatio),
	)

	st := runLoop(ctx, cfg, g, api, rng, logger)
	logger.Info("tradegen done",
		zap.Int("sent", st.Sent),
		zap.Int("created", st.Created),
		zap.Int("rejected", st.Rejected),
		zap.Int("unexpected", st.Unexpected),
		zap.Int("errors", st.Errors),
	)
}
