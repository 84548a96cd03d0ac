package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every failure leaves the API in the same envelope: no machine-readable
// codes beyond the HTTP status itself.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}
