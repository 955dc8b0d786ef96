// internal/models/vehicle.go
package models

import "time"

type Vehicle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Plate     string    `gorm:"size:20;uniqueIndex;not null" json:"plate"` // stored upper-cased
	Model     *string   `gorm:"size:80" json:"model"`
	Year      *int      `json:"year"`
	Type      *string   `gorm:"size:50" json:"type"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
