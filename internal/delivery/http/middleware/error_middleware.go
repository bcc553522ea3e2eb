package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"talenthub-backend/internal/delivery/http/response"
	"talenthub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached via c.Error onto the JSON error
// envelope. AppError codes pass through; anything else becomes a 500 with
// the cause logged server-side and echoed in the detail field.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError {
				slog.Error("request failed", "path", c.Request.URL.Path, "error", appErr.Err)
				detail := ""
				if appErr.Err != nil {
					detail = appErr.Err.Error()
				}
				response.Error(c, appErr.Code, appErr.Message, detail)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, "")
			return
		}

		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!", err.Error())
	}
}
