package service

import (
	"context"

	"vehicle_logbook/internal/models"
)

// Store is the persistence the service needs. repository.Repo implements it.
type Store interface {
	ListActiveWorkers(ctx context.Context) ([]models.Worker, error)
	CreateWorker(ctx context.Context, w *models.Worker) error
	DeactivateWorker(ctx context.Context, id uint) error

	ListActiveVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	DeactivateVehicle(ctx context.Context, id uint) error

	CreateShiftRecord(ctx context.Context, rec *models.ShiftRecord) error
	ListShiftRecords(ctx context.Context, f models.ShiftRecordFilter) ([]models.ShiftRecordSummary, error)
	GetShiftRecord(ctx context.Context, id uint) (*models.ShiftRecord, error)

	Ping(ctx context.Context) error
}
