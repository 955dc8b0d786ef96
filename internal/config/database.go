package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vehicle_logbook/internal/models"
)

// InitDB opens the lib/pq pool, hands it to gorm and, when enabled, migrates the schema.
// Writes that need atomicity open their own transaction, so gorm's implicit one is off.
func InitDB(cfg *Config, log gormlogger.Interface) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect to %s:%s/%s: %w", cfg.DBHost, cfg.DBPort, cfg.DBName, err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 log,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
		logrus.Info("database schema migrated")
	}
	return db, nil
}

// Migrate creates or updates the logbook tables. Parents come before the rows that
// reference them.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Worker{},
		&models.Vehicle{},
		&models.ShiftRecord{},
		&models.EquipmentChecklist{},
		&models.VehicleChecklist{},
		&models.FuelEntry{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
