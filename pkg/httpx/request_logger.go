package httpx

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — одна строка на запрос к /reports; служебные /metrics и /ping не логируются.
// 5xx пишется как warning.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		switch path {
		case "/metrics", "/ping":
			return
		case "":
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		span, _ := ctxmeta.SpanIDFromContext(ctx)
		status := c.Writer.Status()

		logf := log.Infof
		if status >= http.StatusInternalServerError {
			logf = log.Warnf
		}
		logf(ctx, "http %s %s store=%s status=%d span=%s duration=%s size=%d",
			c.Request.Method, path, c.Param("store"), status, span, time.Since(start), c.Writer.Size())
	}
}
