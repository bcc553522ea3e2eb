// Package response holds the JSON error shape shared by handlers and
// middleware. Success payloads are resource-shaped and emitted directly by
// each handler; only errors have a common envelope.
package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope: a short error string plus an optional
// human-readable detail.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error sends an error response and prevents later handlers from writing.
func Error(c *gin.Context, code int, errMsg, detail string) {
	c.AbortWithStatusJSON(code, ErrorBody{Error: errMsg, Message: detail})
}
