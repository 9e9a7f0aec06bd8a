package model

import (
	"time"

	"gorm.io/gorm"
)

// AcademicProgram represents an entry in the public academic catalog
type AcademicProgram struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Type        string         `gorm:"type:varchar(50);not null;index" json:"type"` // department, program, calendar
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Duration    string         `gorm:"type:varchar(50)" json:"duration,omitempty"`
	Eligibility string         `gorm:"type:text" json:"eligibility,omitempty"`
	ImageURL    string         `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	Status      string         `gorm:"type:varchar(10);default:'active';index" json:"status"` // active, inactive
}
