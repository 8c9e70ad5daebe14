package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/indexpulse/internal/domain/dto"
	"github.com/guttosm/indexpulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a
// standardized JSON error response.
//
// Behavior:
//   - Runs the handler chain first.
//   - If any handler recorded errors via c.Error(), logs the last one
//     and, when no response was written yet, answers 500 with an
//     ErrorResponse body.
//
// Handlers that already wrote a response keep it; this is only a net
// for errors that would otherwise leave the client hanging.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
	}
}
