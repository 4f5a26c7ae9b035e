package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerstub/internal/logger"
)

const contentTypePlain = "text/plain; charset=utf-8"

// AbortWithError stops the chain and writes status with a plain-text reason.
// When err is non-nil its message is appended to msg.
//
// Headers already set by earlier middlewares (CORS, request id) are kept;
// only Content-Type is switched to text/plain.
func AbortWithError(c *gin.Context, status int, msg string, err error) {
	body := msg
	if err != nil {
		if body == "" {
			body = err.Error()
		} else {
			body += ": " + err.Error()
		}
	}
	c.Header("Content-Type", contentTypePlain)
	c.String(status, body)
	c.Abort()
}

// ErrorHandler renders the last error pushed with c.Error as a 500 when the
// handler itself did not write a response.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
//
//	func handler(c *gin.Context) {
//	    if err := work(); err != nil {
//	        _ = c.Error(err)
//	        return
//	    }
//	}
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Err(last.Err).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}
	AbortWithError(c, http.StatusInternalServerError, "", last.Err)
}
