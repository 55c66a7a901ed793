package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// SingleFlight rejects a request while another guarded request for the same
// session is still in flight. The backend has no idempotency token, so a
// second submission must not start before the first resolves; this is the
// server-side analog of disabling the submit button.
func SingleFlight() gin.HandlerFunc {
	var inflight sync.Map
	return func(c *gin.Context) {
		sid, exists := c.Get("sessionID")
		if !exists {
			c.Next()
			return
		}
		if _, busy := inflight.LoadOrStore(sid, struct{}{}); busy {
			c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
			c.Abort()
			return
		}
		defer inflight.Delete(sid)
		c.Next()
	}
}
