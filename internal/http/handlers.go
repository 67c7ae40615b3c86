package http

import (
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/domain"
	"github.com/example/market-mock-api/internal/instruments"
	"github.com/example/market-mock-api/internal/metrics"
	"github.com/example/market-mock-api/internal/trades"
	"github.com/example/market-mock-api/internal/users"
)

type Services struct {
	Instruments *instruments.Service
	Users       *users.Service
	Trades      *trades.Service
}

type Server struct {
	R        *gin.Engine
	Services Services
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// NewServer wires the router, services, metrics, and middleware. Entity
// routes are mounted under basePath.
func NewServer(svc Services, m *metrics.Metrics, logger *zap.Logger, basePath, corsOrigin string) *Server {
	g := gin.New()

	// Request logging
	g.Use(func(cn *gin.Context) {
		start := time.Now()
		cn.Next()
		logger.Info("http_request",
			zap.String("method", cn.Request.Method),
			zap.String("path", cn.Request.URL.Path),
			zap.Int("status", cn.Writer.Status()),
			zap.String("ip", cn.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	})

	g.Use(gin.CustomRecovery(func(cn *gin.Context, rec any) {
		logger.Error("panic", zap.Any("recovered", rec), zap.String("path", cn.Request.URL.Path))
		failure(cn, http.StatusInternalServerError, "internal server error")
	}))

	// Metrics
	g.Use(func(cn *gin.Context) {
		start := time.Now()
		cn.Next()
		route := cn.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(cn.Request.Method, route, strconv.Itoa(cn.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(cn.Request.Method, route).Observe(time.Since(start).Seconds())
	})

	// CORS
	g.Use(func(cn *gin.Context) {
		origin := cn.GetHeader("Origin")
		cn.Writer.Header().Set("Vary", "Origin")
		cn.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		cn.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		cn.Writer.Header().Set("Access-Control-Max-Age", "86400")
		if corsOrigin == "*" {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && origin == corsOrigin {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", corsOrigin)
		}
		if cn.Request.Method == http.MethodOptions {
			cn.AbortWithStatus(http.StatusNoContent)
			return
		}
		cn.Next()
	})

	s := &Server{R: g, Services: svc, Metrics: m, Logger: logger}

	g.GET("/health", func(cn *gin.Context) { cn.JSON(http.StatusOK, gin.H{"ok": true}) })
	g.GET("/metrics", gin.WrapH(m.Handler()))
	g.NoRoute(func(cn *gin.Context) { failure(cn, http.StatusNotFound, "Resource not found") })

	api := g.Group(basePath)
	{
		api.GET("/instruments", s.listInstruments)
		api.GET("/instruments/:id", s.getInstrument)
		api.POST("/instruments", s.createInstrument)
		api.PUT("/instruments/:id", s.updateInstrument)
		api.DELETE("/instruments/:id", s.deleteInstrument)

		api.GET("/users", s.listUsers)
		api.GET("/users/:id", s.getUser)

		api.GET("/trades", s.listTrades)
		api.GET("/trades/:id", s.getTrade)
		api.POST("/trades", s.createTrade)
	}

	return s
}

// --- Helpers ---

func parseID(c *gin.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Malformed("Invalid id: %q", raw)
	}
	return id, nil
}
