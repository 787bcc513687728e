package gallery

import "time"

// Photo is one gallery entry. Fecha is the shoot date as YYYY-MM-DD; the
// gallery sorts on it, newest first.
type Photo struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Fecha       string    `gorm:"not null;index" json:"fecha"`
	ImgURL      string    `gorm:"not null" json:"img_url"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Photo) TableName() string { return "studio.photos" }
