package auth

import "time"

// Admin is the single administrator credential record. Only the bcrypt hash
// is stored; login payloads decode into their own struct.
type Admin struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Admin) TableName() string { return "studio.admins" }
