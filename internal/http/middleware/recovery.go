// README: Recovery middleware; a panicking handler yields a JSON 500 instead of a dropped connection.
package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[HTTP] panic | %s %s | rid=%s | %v", c.Request.Method, c.Request.URL.Path, RequestIDFrom(c), r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
