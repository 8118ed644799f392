package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger 用 zerolog 記錄每個請求，取代 gin 預設的文字日誌
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP())

		if route := c.FullPath(); route != "" {
			event = event.Str("route", route)
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.Msg("request")
	}
}
