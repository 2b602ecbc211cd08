package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize runs requests one at a time. The bookkeeping core is not safe
// for concurrent mutation, so every route that reaches it goes through here.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
