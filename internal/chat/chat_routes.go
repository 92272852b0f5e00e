package chat

import (
	"clarityflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, limit rate.Limit, burst int) {
	chat := r.Group("/chat")
	chat.Use(middleware.RateLimitByUser(limit, burst))
	{
		chat.GET("/messages", handler.GetMessages)
		chat.POST("/messages", handler.AddMessage)
		chat.DELETE("/messages", handler.ClearMessages)
	}
}
