package http

import (
	"github.com/gin-gonic/gin"

	"personal-agenda/internal/task"
	"personal-agenda/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case task.ErrDuplicateTask:
		response.Conflict(c, err)
	case task.ErrTaskNotFound:
		response.NotFound(c, err)
	case task.ErrInvalidTimeRange:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
