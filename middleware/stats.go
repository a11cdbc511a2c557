package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/geosearch/backend/stats"
)

// Stats records per-request usage figures: unique visitors by client
// IP. Analysis counters are recorded by the analyzer itself, so only
// visitor tracking lives here.
func Stats(storage *stats.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		storage.RecordVisitor(c.ClientIP())
		c.Next()
	}
}
