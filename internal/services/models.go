package services

import "time"

// Service is one studio service row (piercings, jewelry changes, aftercare).
// Column names mirror the original Supabase table, hence the mixed language.
type Service struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Descripcion string    `json:"descripcion"`
	Price       float64   `gorm:"not null" json:"price"`
	ImgURL      string    `json:"img_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "studio.services" }
