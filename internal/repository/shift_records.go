package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/models"
)

const dateLayout = "2006-01-02"

// CreateShiftRecord writes the header, both checklists and the optional fuel entry in one
// transaction, in that order. On any failure nothing is persisted and rec.ID is reset.
func (r *Repo) CreateShiftRecord(ctx context.Context, rec *models.ShiftRecord) error {
	if rec.Equipment == nil {
		rec.Equipment = &models.EquipmentChecklist{}
	}
	if rec.VehicleChecklist == nil {
		rec.VehicleChecklist = &models.VehicleChecklist{}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children are inserted explicitly below to keep the order fixed.
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return fmt.Errorf("insert shift record: %w", err)
		}

		rec.Equipment.ShiftRecordID = rec.ID
		if err := tx.Create(rec.Equipment).Error; err != nil {
			return fmt.Errorf("insert equipment checklist: %w", err)
		}

		rec.VehicleChecklist.ShiftRecordID = rec.ID
		if err := tx.Create(rec.VehicleChecklist).Error; err != nil {
			return fmt.Errorf("insert vehicle checklist: %w", err)
		}

		if rec.Fuel != nil && !rec.Fuel.IsEmpty() {
			rec.Fuel.ShiftRecordID = rec.ID
			if err := tx.Create(rec.Fuel).Error; err != nil {
				return fmt.Errorf("insert fuel entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		rec.ID = 0
		return apperr.Storage("could not save shift record", err)
	}
	return nil
}

// ListShiftRecords returns summaries ordered newest first. Date bounds are inclusive.
func (r *Repo) ListShiftRecords(ctx context.Context, f models.ShiftRecordFilter) ([]models.ShiftRecordSummary, error) {
	q := r.db.WithContext(ctx).
		Table("shift_records AS s").
		Select(`s.id, s.date, s.shift_label, s.record_type, s.odometer_km, s.general_notes, s.created_at,
			w.name AS worker_name, v.plate AS vehicle_plate, v.model AS vehicle_model`).
		Joins("JOIN workers w ON w.id = s.worker_id").
		Joins("JOIN vehicles v ON v.id = s.vehicle_id")

	if f.WorkerID != 0 {
		q = q.Where("s.worker_id = ?", f.WorkerID)
	}
	if f.VehicleID != 0 {
		q = q.Where("s.vehicle_id = ?", f.VehicleID)
	}
	if f.DateFrom != nil {
		q = q.Where("s.date >= ?", f.DateFrom.Format(dateLayout))
	}
	if f.DateTo != nil {
		q = q.Where("s.date <= ?", f.DateTo.Format(dateLayout))
	}
	q = q.Order("s.date DESC, s.created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	out := make([]models.ShiftRecordSummary, 0)
	if err := q.Scan(&out).Error; err != nil {
		return nil, apperr.Storage("could not list shift records", err)
	}
	return out, nil
}

// GetShiftRecord loads a record with its worker, vehicle, checklists and fuel entry.
func (r *Repo) GetShiftRecord(ctx context.Context, id uint) (*models.ShiftRecord, error) {
	var rec models.ShiftRecord
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Vehicle").
		Preload("Equipment").
		Preload("VehicleChecklist").
		Preload("Fuel").
		First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("shift record not found")
		}
		return nil, apperr.Storage("could not load shift record", err)
	}
	return &rec, nil
}
