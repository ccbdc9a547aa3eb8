package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger はリクエストごとにアクセスログを出力します。
func Logger(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(slog.String("component", "http"))

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.String("remote_addr", c.ClientIP()),
			slog.String("request_id", GetRequestID(c)),
			slog.Duration("duration", time.Since(start)),
		}
		if c.Writer.Status() >= 500 {
			log.ErrorContext(c.Request.Context(), "request completed", attrs...)
			return
		}
		log.InfoContext(c.Request.Context(), "request completed", attrs...)
	}
}
