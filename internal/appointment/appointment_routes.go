package appointment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", handler.GetAll)
		appointments.GET("/:id", handler.GetByID)
		appointments.POST("", handler.Create)
		appointments.PUT("/:id", handler.Update)
		appointments.DELETE("/:id", handler.Delete)
	}
}
