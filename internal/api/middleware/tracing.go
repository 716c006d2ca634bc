package middleware

import (
	"github.com/Conceptual-Machines/tweetcraft-api/internal/observability"
	"github.com/gin-gonic/gin"
)

// LangfuseTrace opens one Langfuse trace per request and attaches it to the
// request context, so every model call of the pipeline lands in the same trace
func LangfuseTrace(client *observability.LangfuseClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.IsEnabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		trace := client.StartTrace(ctx, c.FullPath(), map[string]interface{}{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
		})
		c.Request = c.Request.WithContext(observability.ContextWithTrace(ctx, trace))

		c.Next()
		trace.Finish()
	}
}
