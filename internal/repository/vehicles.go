package repository

import (
	"context"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/models"
)

func (r *Repo) ListActiveVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("plate").Find(&vehicles).Error; err != nil {
		return nil, apperr.Storage("could not list vehicles", err)
	}
	return vehicles, nil
}

func (r *Repo) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return translate(err, "a vehicle with that plate already exists", "could not create vehicle")
	}
	return nil
}

func (r *Repo) DeactivateVehicle(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Vehicle{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return apperr.Storage("could not deactivate vehicle", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("vehicle not found")
	}
	return nil
}
