package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PageSection holds editable content for a section of a public page
// (homepage hero, principal's message, per-page hero banners and similar).
// Items carries section-specific structured content such as stat tiles or
// notice-board entries.
type PageSection struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Page        string         `gorm:"type:varchar(50);not null;index:idx_page_section,unique" json:"page"`    // homepage, admissions, academics, facilities, news, student-portal
	Section     string         `gorm:"type:varchar(50);not null;index:idx_page_section,unique" json:"section"` // hero, principal, stats, ...
	Title       string         `gorm:"type:varchar(255)" json:"title,omitempty"`
	Subtitle    string         `gorm:"type:varchar(255)" json:"subtitle,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string         `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	Items       datatypes.JSON `gorm:"type:jsonb" json:"items,omitempty"`
}
