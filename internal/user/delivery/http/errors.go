package http

import (
	"github.com/gin-gonic/gin"

	"personal-agenda/internal/user"
	"personal-agenda/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case user.ErrEmailTaken, user.ErrPhoneTaken:
		response.Conflict(c, err)
	case user.ErrUserNotFound:
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
