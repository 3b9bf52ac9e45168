package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message back.
				logger.Log.Error("unhandled request error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "Une erreur inattendue est survenue. Veuillez réessayer plus tard.", nil)
			}
		}
	}
}
