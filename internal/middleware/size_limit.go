package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var multipartOverhead = int64(8 * 1024) // rough padding for field boundaries

// SizeLimit caps the request body so an oversized upload is cut off while
// streaming instead of being buffered whole. Handlers observe the cutoff as
// http.MaxBytesError when reading the form.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes+multipartOverhead)
		c.Next()
	}
}
