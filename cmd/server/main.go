package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/config"
	"github.com/example/market-mock-api/internal/events"
	"github.com/example/market-mock-api/internal/fixtures"
	httpserver "github.com/example/market-mock-api/internal/http"
	"github.com/example/market-mock-api/internal/instruments"
	kafkapub "github.com/example/market-mock-api/internal/kafka"
	"github.com/example/market-mock-api/internal/logging"
	"github.com/example/market-mock-api/internal/metrics"
	"github.com/example/market-mock-api/internal/store"
	"github.com/example/market-mock-api/internal/trades"
	"github.com/example/market-mock-api/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	set, err := fixtures.Load(cfg.FixturesDir)
	if err != nil {
		logger.Fatal("fixtures", zap.String("dir", cfg.FixturesDir), zap.Error(err))
	}
	instStore := store.Seed(set.Instruments)
	userStore := store.Seed(set.Users)
	tradeStore := store.Seed(set.Trades)
	logger.Info("fixtures loaded",
		zap.Int("instruments", instStore.Len()),
		zap.Int("users", userStore.Len()),
		zap.Int("trades", tradeStore.Len()),
	)

	var pub events.Publisher = events.Nop()
	if cfg.KafkaBrokers != "" {
		kp := kafkapub.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Warn("kafka close", zap.Error(err))
			}
		}()
		pub = kp
		logger.Info("publishing events", zap.String("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	instSvc := instruments.New(instStore, pub, logger)
	userSvc := users.New(userStore, logger)
	tradeSvc := trades.New(tradeStore, userSvc, instSvc, pub, logger)

	m := metrics.New(map[string]metrics.Sizer{
		"instruments": instStore,
		"users":       userStore,
		"trades":      tradeStore,
	})

	gin.SetMode(cfg.GinMode)
	s := httpserver.NewServer(httpserver.Services{
		Instruments: instSvc,
		Users:       userSvc,
		Trades:      tradeSvc,
	}, m, logger, cfg.BasePath, cfg.CORSOrigin)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: s.R}
	go func() {
		logger.Info("http listening", zap.String("port", cfg.Port), zap.String("base_path", cfg.BasePath))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ctxShut, cancelShut := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShut()
	_ = server.Shutdown(ctxShut)
	logger.Info("shutdown complete")
}
