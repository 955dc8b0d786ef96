package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_logbook/internal/service"
)

// ListVehicles returns the active vehicles ordered by plate.
func ListVehicles(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicles, err := svc.ListVehicles(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicles)
	}
}

func CreateVehicle(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.VehicleInput
		if err := c.ShouldBind(&input); err != nil {
			respondBindError(c, err)
			return
		}

		id, err := svc.CreateVehicle(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "message": "vehicle created"})
	}
}

func DeactivateVehicle(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.DeactivateVehicle(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "vehicle deactivated"})
	}
}
