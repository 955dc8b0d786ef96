// internal/models/worker.go
package models

import "time"

// Worker is a crew member who signs shift records. Workers are never deleted;
// Active=false hides them from the selection lists.
type Worker struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:120;not null" json:"name"`
	NationalID string    `gorm:"size:30;uniqueIndex;not null" json:"national_id"`
	ShiftLabel string    `gorm:"size:50;not null" json:"shift_label"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
