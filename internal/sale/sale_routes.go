package sale

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sales := r.Group("/sales")
	{
		sales.GET("", handler.GetAll)
		sales.GET("/:id", handler.GetByID)
		sales.POST("", handler.Create)
		sales.PUT("/:id", handler.Update)
		sales.DELETE("/:id", handler.Delete)
	}
}
