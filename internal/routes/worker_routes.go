package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle_logbook/internal/controllers"
	"vehicle_logbook/internal/service"
)

func WorkerRoutes(r *gin.Engine, svc *service.Service) {
	workers := r.Group("/workers")
	{
		workers.GET("", controllers.ListWorkers(svc))
		workers.POST("", controllers.CreateWorker(svc))
		workers.DELETE("/:id", controllers.DeactivateWorker(svc))
	}
}
