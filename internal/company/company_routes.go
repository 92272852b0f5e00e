package company

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	{
		companies.GET("", handler.GetAll)
		companies.GET("/:id", handler.Get)
		companies.POST("", handler.Create)
		companies.PUT("/:id", handler.Update)
	}
}
