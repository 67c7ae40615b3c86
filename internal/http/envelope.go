package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/domain"
)

// Envelope wraps every response body, successful or not.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, Envelope{Success: true, Message: msg, Data: data})
}

func failure(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: msg})
}

// fail translates service errors into envelope + status. Anything outside the
// request-error taxonomy is a 500.
func (s *Server) fail(c *gin.Context, where string, err error) {
	switch {
	case domain.IsNotFound(err):
		failure(c, http.StatusNotFound, err.Error())
	case domain.IsInvalid(err), domain.IsMalformed(err):
		failure(c, http.StatusBadRequest, err.Error())
	default:
		s.Logger.Error("internal_error", zap.String("where", where), zap.Error(err))
		failure(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindError turns a gin binding failure into a MalformedRequest.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				msgs = append(msgs, fe.Field()+" is required")
			} else {
				msgs = append(msgs, fe.Field()+" failed "+fe.Tag()+" validation")
			}
		}
		return domain.Malformed("%s", strings.Join(msgs, "; "))
	case errors.Is(err, io.EOF):
		return domain.Malformed("Request body is required")
	default:
		return domain.Malformed("Malformed request body: %v", err)
	}
}
