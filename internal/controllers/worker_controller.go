package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_logbook/internal/service"
)

// ListWorkers returns the active workers ordered by name.
func ListWorkers(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		workers, err := svc.ListWorkers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, workers)
	}
}

// CreateWorker registers a worker from a JSON or form body.
func CreateWorker(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.WorkerInput
		if err := c.ShouldBind(&input); err != nil {
			respondBindError(c, err)
			return
		}

		id, err := svc.CreateWorker(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "message": "worker created"})
	}
}

// DeactivateWorker hides a worker from the active listing. Past records keep referencing it.
func DeactivateWorker(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.DeactivateWorker(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "worker deactivated"})
	}
}
