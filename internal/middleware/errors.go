package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/marketpulse/internal/domain/dto"
	"github.com/guttosm/marketpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context via c.Error() into a standardized 500 JSON response, unless a
// handler already wrote one.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If any handler pushed an error and no body was written, responds with
//     dto.NewErrorResponse and HTTP 500.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError aborts the request with the given status and a standardized
// JSON error body built from message and err.
//
// Parameters:
//   - c (*gin.Context): Request context to abort.
//   - status (int): HTTP status code to return.
//   - message (string): Human-readable error description.
//   - err (error): Optional underlying error, may be nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
