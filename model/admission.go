package model

import (
	"time"

	"gorm.io/gorm"
)

// AdmissionStatus represents the lifecycle state of an application
type AdmissionStatus string

const (
	AdmissionStatusPending  AdmissionStatus = "pending"
	AdmissionStatusApproved AdmissionStatus = "approved"
	AdmissionStatusRejected AdmissionStatus = "rejected"
)

// IsValid reports whether the status is a member of the enum
func (s AdmissionStatus) IsValid() bool {
	switch s {
	case AdmissionStatusPending, AdmissionStatusApproved, AdmissionStatusRejected:
		return true
	}
	return false
}

// Courses offered by the college, fixed enumerated set
var Courses = []string{"btech", "bsc", "mtech", "mba", "msc", "mca", "fsc", "premedical", "ics", "icom"}

// IsValidCourse reports whether course is one of the offered programs
func IsValidCourse(course string) bool {
	for _, c := range Courses {
		if c == course {
			return true
		}
	}
	return false
}

// Admission represents a single admission application and its lifecycle state
type Admission struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	ReferenceNo string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference_no"`

	// Personal information (immutable after submission)
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(254);not null;index" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	DOB       time.Time `gorm:"not null" json:"dob"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	City      string    `gorm:"type:varchar(100);not null" json:"city"`
	State     string    `gorm:"type:varchar(100);not null" json:"state"`
	ZipCode   string    `gorm:"type:varchar(20);not null" json:"zip_code"`

	// Course information
	Course        string `gorm:"type:varchar(20);not null" json:"course"`
	AdmissionYear int    `gorm:"not null" json:"admission_year"`

	// Prior academic record (optional, free-form)
	MatricSchool      string  `gorm:"type:varchar(255)" json:"matric_school,omitempty"`
	MatricBoard       string  `gorm:"type:varchar(255)" json:"matric_board,omitempty"`
	MatricPassingYear int     `json:"matric_passing_year,omitempty"`
	MatricPercentage  float64 `json:"matric_percentage,omitempty"`
	InterCollege      string  `gorm:"type:varchar(255)" json:"inter_college,omitempty"`
	InterBoard        string  `gorm:"type:varchar(255)" json:"inter_board,omitempty"`
	InterPassingYear  int     `json:"inter_passing_year,omitempty"`
	InterPercentage   float64 `json:"inter_percentage,omitempty"`

	// Document references
	PhotoURL           string `gorm:"type:varchar(512);not null" json:"photo_url"`
	IDProofURL         string `gorm:"type:varchar(512);not null" json:"id_proof_url"`
	MatricMarksheetURL string `gorm:"type:varchar(512)" json:"matric_marksheet_url,omitempty"`
	InterMarksheetURL  string `gorm:"type:varchar(512)" json:"inter_marksheet_url,omitempty"`

	// Lifecycle state, mutated only through the admission service
	Status        AdmissionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	StatusMessage string          `gorm:"type:text" json:"status_message,omitempty"`

	// Review audit trail
	ReviewedBy *uint      `gorm:"index" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	// Whether a decision email reached the applicant
	IsNotified bool `gorm:"default:false" json:"is_notified"`

	// Relationships
	Reviewer *User `gorm:"foreignKey:ReviewedBy" json:"-"`
}

// FullName returns the applicant's display name
func (a *Admission) FullName() string {
	return a.FirstName + " " + a.LastName
}

// AdmissionSummary is the trimmed projection returned by the stats endpoint;
// document fields are excluded to bound response size.
type AdmissionSummary struct {
	ID          uint            `json:"id"`
	ReferenceNo string          `json:"reference_no"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Course      string          `json:"course"`
	Status      AdmissionStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AdmissionStats aggregates per-status counts for the admin dashboard
type AdmissionStats struct {
	Total    int64              `json:"total"`
	Pending  int64              `json:"pending"`
	Approved int64              `json:"approved"`
	Rejected int64              `json:"rejected"`
	Recent   []AdmissionSummary `json:"recent"`
}
