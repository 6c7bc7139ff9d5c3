package routes

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// requestID keeps a caller supplied X-Request-ID or mints one, and echoes it
// on the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// accessLogFormat is gin's access log with the request id appended.
func accessLogFormat(p gin.LogFormatterParams) string {
	id, _ := p.Keys[ctxRequestID].(string)
	return fmt.Sprintf("[http] %s method=%s path=%s status=%d latency=%s request_id=%s\n",
		p.TimeStamp.UTC().Format(time.RFC3339), p.Method, p.Path, p.StatusCode, p.Latency, id)
}
