package http

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/example/market-mock-api/internal/models"
)

func (s *Server) listInstruments(c *gin.Context) {
	ok(c, http.StatusOK, "", s.Services.Instruments.List())
}

func (s *Server) getInstrument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, "getInstrument", err)
		return
	}
	in, err := s.Services.Instruments.Get(id)
	if err != nil {
		s.fail(c, "getInstrument", err)
		return
	}
	ok(c, http.StatusOK, "", in)
}

func (s *Server) createInstrument(c *gin.Context) {
	var req models.InstrumentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, "createInstrument", bindError(err))
		return
	}
	in, err := s.Services.Instruments.Create(c.Request.Context(), req)
	if err != nil {
		s.fail(c, "createInstrument", err)
		return
	}
	ok(c, http.StatusCreated, "Instrument created successfully", in)
}

// updateInstrument is routed as PUT but only overwrites the fields present in
// the body.
func (s *Server) updateInstrument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, "updateInstrument", err)
		return
	}
	var req models.InstrumentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, "updateInstrument", bindError(err))
		return
	}
	in, err := s.Services.Instruments.Update(c.Request.Context(), id, req)
	if err != nil {
		s.fail(c, "updateInstrument", err)
		return
	}
	ok(c, http.StatusOK, "Instrument updated successfully", in)
}

func (s *Server) deleteInstrument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, "deleteInstrument", err)
		return
	}
	if err := s.Services.Instruments.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, "deleteInstrument", err)
		return
	}
	ok(c, http.StatusOK, "Instrument deleted successfully", nil)
}
