package model

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage represents a message submitted through the contact form
type ContactMessage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(254);not null" json:"email"`
	Message   string         `gorm:"type:text;not null" json:"message"`
}
