package model

import (
	"time"

	"gorm.io/gorm"
)

// NewsEvent represents a news item, campus event or cultural activity
type NewsEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Type        string         `gorm:"type:varchar(20);not null;default:'news';index" json:"type"` // news, event, cultural
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Date        *time.Time     `json:"date,omitempty"`
	ImageURL    string         `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	VideoURL    string         `gorm:"type:varchar(512)" json:"video_url,omitempty"`
	Venue       string         `gorm:"type:varchar(255)" json:"venue,omitempty"`
	Status      string         `gorm:"type:varchar(10);default:'active';index" json:"status"` // active, inactive, upcoming, completed
}
