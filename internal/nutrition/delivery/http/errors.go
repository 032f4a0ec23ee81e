package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nutrition-agent/internal/nutrition"
	"nutrition-agent/pkg/response"
)

// errInvalidBody marks a request body that failed to bind.
var errInvalidBody = errors.New("Dữ liệu không hợp lệ")

// respondError translates domain errors into HTTP responses. Validation
// failures, malformed bodies and unknown workflow names are the caller's
// fault; anything else surfaces as a 500 with the raw message.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, nutrition.ErrEmptyMessage),
		errors.Is(err, nutrition.ErrNotEnoughImages),
		errors.Is(err, nutrition.ErrNoImages),
		errors.Is(err, nutrition.ErrUnknownWorkflow):
		response.BadRequest(c, err.Error())
	case errors.Is(err, nutrition.ErrProfileNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

// respondResult sends an operation result: error variants are the caller's
// fault (bad image, nothing recognized) and map to 400, success payloads
// flatten into the 200 body.
func (h *handler) respondResult(c *gin.Context, result nutrition.OperationResult) {
	if result.IsError() {
		response.BadRequest(c, result.ErrorMessage())
		return
	}
	response.OK(c, newOperationResp(result))
}
