package main

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

type stats struct {
	Sent     int
	Created  int
	Rejected int
	// Requests built to fail that the API accepted, or valid ones it refused.
	Unexpected int
	Errors     int
}

// poster is the part of apiClient the loop drives.
type poster interface {
	createTrade(ctx context.Context, req tradeRequest) (int, envelope[trade], error)
}

func runLoop(ctx context.Context, cfg Config, g *generator, api poster, rng *rand.Rand, logger *zap.Logger) stats {
	period := time.Second / time.Duration(cfg.Rate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var st stats
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logger.Info("tradegen: TTL reached; exiting")
			} else {
				logger.Info("tradegen: shutting down (signal)")
			}
			return st

		case <-ticker.C:
			// jitter
			time.Sleep(time.Duration(rng.Intn(150)) * time.Millisecond)

			req, wantReject := g.next()
			st.Sent++
			code, env, err := api.createTrade(ctx, req)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				st.Errors++
				logger.Warn("post error", zap.Error(err))
				continue
			}

			created := env.Success && code < 300
			if created {
				st.Created++
			} else {
				st.Rejected++
			}
			if created == wantReject {
				st.Unexpected++
				logger.Warn("unexpected outcome",
					zap.Bool("expected_reject", wantReject),
					zap.Int("status", code),
					zap.String("message", env.Message),
					zap.Any("request", req),
				)
				continue
			}
			logger.Info("sent",
				zap.Int("status", code),
				zap.String("trade_id", env.Data.ID),
				zap.String("user_id", req.UserID),
				zap.String("instrument_id", req.InstrumentID),
				zap.String("side", req.Side),
				zap.Int("qty", req.Quantity),
				zap.String("message", env.Message),
			)
		}
	}
}
