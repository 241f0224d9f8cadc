package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Azimiwizard/App-1/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

// Error maps an apperr kind to its HTTP status. Unknown errors surface
// as 500 with a generic message so backend details never leak.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case apperr.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case apperr.Conflict:
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case apperr.Forbidden:
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": err.Error()})
	case apperr.Unauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
	case apperr.Unavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}
