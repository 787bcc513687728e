package products

import "time"

// Product is one jewelry item in the studio shop.
type Product struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"not null" json:"nombre"`
	Price       float64   `gorm:"not null" json:"price"`
	Descripcion string    `json:"descripcion"`
	Material    string    `gorm:"not null" json:"material"`
	ImgURL      string    `json:"img_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "studio.products" }
