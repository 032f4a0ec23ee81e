package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the payload as-is. Success payloads on this API are
// flat objects (e.g. {"success": true, "detected_foods": [...]}), not a
// wrapped envelope, so handlers pass fully-shaped DTOs.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with the standard error body.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: message})
}

// NotFound sends 404 with the standard error body.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrResp{Error: message})
}

// TooManyRequests sends 429 with the standard error body.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Error: message})
}

// InternalError sends 500 carrying the raw error message. Clients only get
// the HTTP status plus the message, no structured error codes.
func InternalError(c *gin.Context, err error) {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrResp{Error: msg})
}
