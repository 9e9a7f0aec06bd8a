package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentResource represents a downloadable item in the student portal
// (books, lecture notes, recorded lectures).
type StudentResource struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Type        string         `gorm:"type:varchar(20);not null;index" json:"type"` // book, note, lecture
	Description string         `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string         `gorm:"type:varchar(512);not null" json:"image_url"`
	FileURL     string         `gorm:"type:varchar(512);not null" json:"file_url"`
	Author      string         `gorm:"type:varchar(255)" json:"author,omitempty"`
	Subject     string         `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Category    string         `gorm:"type:varchar(255)" json:"category,omitempty"`
	Duration    int            `gorm:"default:0" json:"duration,omitempty"`               // minutes, lectures only
	Level       string         `gorm:"type:varchar(20)" json:"level,omitempty"` // Intermediate, Graduate, Post Graduate
}
