package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards state-changing endpoints (approval, cancellation)
// against duplicate submissions carrying the same Idempotency-Key header.
// The short-lived lock absorbs double-clicks and client retries; the
// PENDING-status precondition in the service remains the authority.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("idemp:%s:%s:lock", c.FullPath(), idempKey)

		// SetNX: if the key already exists, a request with the same key is
		// still in flight. Expiry keeps a crashed server from holding the
		// lock forever.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is already being processed",
			})
			return
		}

		c.Next()
	}
}
