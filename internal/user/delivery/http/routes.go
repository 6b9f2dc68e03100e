package http

import (
	"github.com/gin-gonic/gin"

	"personal-agenda/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Registration is public; profile routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", mw.Auth(), h.List)
		users.GET("/me", mw.Auth(), h.Me)
		users.PUT("/me", mw.Auth(), h.Update)
		users.DELETE("/me", mw.Auth(), h.Delete)
	}
}
