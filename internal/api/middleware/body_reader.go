package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/ChMubasharAli/getpiepay/internal/api/constants"

	"github.com/gin-gonic/gin"
)

// maxBodySize caps inquiry submissions; the form carries short text fields only
const maxBodySize = 64 * 1024

// PreserveRequestBody middleware reads the request body once and restores it.
// This allows validators and handlers to both read the body.
func PreserveRequestBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only process POST requests with a request body
		if c.Request.Body == nil || c.Request.Method != "POST" {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}

		// Restore the body for subsequent middleware
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		// Store body in context for potential use later
		c.Set(constants.ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}
