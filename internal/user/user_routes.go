package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		// Tidak ada DELETE: profil tidak pernah dihapus oleh core.
	}

	r.PUT("/me", handler.UpdateProfile)
}
