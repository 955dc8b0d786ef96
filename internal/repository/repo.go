package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"vehicle_logbook/internal/apperr"
)

// Postgres unique_violation.
const uniqueViolation = "23505"

// Repo is the gorm-backed store for workers, vehicles and shift records.
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Ping checks that the database answers.
func (r *Repo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return apperr.Storage("database handle unavailable", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperr.Storage("database unreachable", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// translate maps a write error to the shared taxonomy.
func translate(err error, conflictMsg, storageMsg string) error {
	if isUniqueViolation(err) {
		return apperr.Conflict(conflictMsg, err)
	}
	return apperr.Storage(storageMsg, err)
}
