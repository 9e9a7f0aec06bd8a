package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FacilityType enumerates the campus facility categories
type FacilityType string

const (
	FacilityTransport   FacilityType = "transport"
	FacilitySports      FacilityType = "sports"
	FacilityMasjid      FacilityType = "masjid"
	FacilityLibrary     FacilityType = "library"
	FacilityHostel      FacilityType = "hostel"
	FacilityDispensary  FacilityType = "dispensary"
	FacilityComputerLab FacilityType = "computerLab"
	FacilityCanteen     FacilityType = "canteen"
)

// Facility represents a campus facility shown on the public site
type Facility struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Type        FacilityType   `gorm:"type:varchar(20);not null;default:'library';index" json:"type"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Status      string         `gorm:"type:varchar(10);default:'active';index" json:"status"` // active, inactive
}
