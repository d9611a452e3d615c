package httpx

import (
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderRunID     = "X-Run-ID"

	maxRequestIDLen = 64
)

// RequestIDMiddleware — request_id из заголовка клиента (если он разумной длины и печатный)
// или новый UUID; кладёт его в контекст и в ответ. Если запрос пришёл во время прогона,
// в ответ добавляется и run_id.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if !acceptableID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		if runID, ok := ctxmeta.RunIDFromContext(ctx); ok {
			c.Header(HeaderRunID, runID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func acceptableID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
