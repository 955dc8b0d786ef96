package repository

import (
	"context"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/models"
)

// ListActiveWorkers returns active workers ordered by name.
func (r *Repo) ListActiveWorkers(ctx context.Context) ([]models.Worker, error) {
	workers := make([]models.Worker, 0)
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&workers).Error; err != nil {
		return nil, apperr.Storage("could not list workers", err)
	}
	return workers, nil
}

func (r *Repo) CreateWorker(ctx context.Context, w *models.Worker) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return translate(err, "a worker with that national id already exists", "could not create worker")
	}
	return nil
}

// DeactivateWorker hides a worker from listings. Past shift records keep referencing it.
func (r *Repo) DeactivateWorker(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Worker{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return apperr.Storage("could not deactivate worker", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("worker not found")
	}
	return nil
}
