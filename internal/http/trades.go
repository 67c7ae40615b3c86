package http

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/example/market-mock-api/internal/models"
)

func (s *Server) listTrades(c *gin.Context) {
	ok(c, http.StatusOK, "", s.Services.Trades.List())
}

func (s *Server) getTrade(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, "getTrade", err)
		return
	}
	t, err := s.Services.Trades.Get(id)
	if err != nil {
		s.fail(c, "getTrade", err)
		return
	}
	ok(c, http.StatusOK, "", t)
}

func (s *Server) createTrade(c *gin.Context) {
	var req models.TradeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, "createTrade", bindError(err))
		return
	}
	t, err := s.Services.Trades.Create(c.Request.Context(), req)
	if err != nil {
		s.fail(c, "createTrade", err)
		return
	}
	ok(c, http.StatusCreated, "Trade created successfully", t)
}
