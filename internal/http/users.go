package http

import (
	"net/http"

	gin "github.com/gin-gonic/gin"
)

func (s *Server) listUsers(c *gin.Context) {
	ok(c, http.StatusOK, "", s.Services.Users.List())
}

func (s *Server) getUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, "getUser", err)
		return
	}
	u, err := s.Services.Users.Get(id)
	if err != nil {
		s.fail(c, "getUser", err)
		return
	}
	ok(c, http.StatusOK, "", u)
}
