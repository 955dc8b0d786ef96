package routes

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"vehicle_logbook/internal/config"
	"vehicle_logbook/internal/controllers"
	"vehicle_logbook/internal/logger"
	"vehicle_logbook/internal/middleware"
	"vehicle_logbook/internal/service"
)

// SetupRouter builds the engine with middleware and every route. It does not start serving.
func SetupRouter(svc *service.Service, cfg *config.Config, logOut io.Writer) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		logger.RequestLogger(logOut),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", controllers.Health(svc))

	WorkerRoutes(r, svc)
	VehicleRoutes(r, svc)
	ShiftRecordRoutes(r, svc, time.Now)

	return r
}
