package model

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationType represents the subsystem a notification originates from
type NotificationType string

const (
	NotificationTypeAdmission NotificationType = "admission"
	NotificationTypeSystem    NotificationType = "system"
	NotificationTypeOther     NotificationType = "other"
)

// Notification is an internal event record surfaced to administrators,
// distinct from outbound applicant email.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Type      NotificationType `gorm:"type:varchar(20);not null;index" json:"type"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Read      bool             `gorm:"default:false;index" json:"read"`
	Metadata  datatypes.JSON   `gorm:"type:jsonb" json:"metadata,omitempty"`

	// Weak back-reference to the admission this event concerns. Lookup only:
	// removing an admission never cascades to its notifications.
	AdmissionID *uint      `gorm:"index" json:"admission_id,omitempty"`
	Admission   *Admission `gorm:"foreignKey:AdmissionID;constraint:OnDelete:SET NULL" json:"admission,omitempty"`
}
