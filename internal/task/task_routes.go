package task

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	tasks := r.Group("/tasks")
	{
		tasks.GET("", handler.GetAll)
		tasks.GET("/:id", handler.GetByID)
		tasks.POST("", handler.Create)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}
