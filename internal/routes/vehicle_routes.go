package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle_logbook/internal/controllers"
	"vehicle_logbook/internal/service"
)

func VehicleRoutes(r *gin.Engine, svc *service.Service) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", controllers.ListVehicles(svc))
		vehicles.POST("", controllers.CreateVehicle(svc))
		vehicles.DELETE("/:id", controllers.DeactivateVehicle(svc))
	}
}
