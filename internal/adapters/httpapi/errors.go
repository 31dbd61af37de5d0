package httpapi

import (
	"errors"
	"net/http"

	"netter/internal/core/apperr"

	"github.com/gin-gonic/gin"
)

func badInput(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
}

// writeError maps handler errors to responses. Not-found answers carry no body.
func writeError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	switch appErr.Code {
	case apperr.CodeInvalidArgument, apperr.CodeInvalidOperation:
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message, "code": appErr.Code})
	case apperr.CodeConflict:
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists", "code": appErr.Code})
	case apperr.CodeNotFound:
		c.Status(http.StatusNotFound)
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
