package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"vehicle_logbook/internal/controllers"
	"vehicle_logbook/internal/service"
)

// ShiftRecordRoutes registers the logbook endpoints. The static paths are matched before /:id.
func ShiftRecordRoutes(r *gin.Engine, svc *service.Service, now func() time.Time) {
	records := r.Group("/shift-records")
	{
		records.GET("", controllers.ListShiftRecords(svc))
		records.POST("", controllers.CreateShiftRecord(svc))
		records.GET("/export", controllers.ExportShiftRecords(svc))
		records.GET("/form", controllers.ShiftRecordForm(now))
		records.GET("/:id", controllers.GetShiftRecord(svc))
	}
}
