package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe belongs to exactly one user; the owner is assigned at creation
// and never changes.
type Recipe struct {
	ID                string `gorm:"primaryKey" json:"id"`
	Title             string `gorm:"not null" json:"title"`
	Instructions      string `gorm:"not null" json:"instructions"`
	MinutesToComplete int    `gorm:"not null" json:"minutes_to_complete"`
	UserID            string `gorm:"index;not null" json:"user_id"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().Format(time.RFC3339)
	r.UpdatedAt = r.CreatedAt
	return
}
