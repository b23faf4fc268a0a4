package notification

import (
	"time"
)

type Type string

const (
	TypeBookingRequest   Type = "booking_request"
	TypeAgreementReady   Type = "agreement_ready"
	TypeAgreementSigned  Type = "agreement_signed"
	TypeBookingApproved  Type = "booking_approved"
	TypeBookingRejected  Type = "booking_rejected"
	TypeBookingCancelled Type = "booking_cancelled"
)

const EntityBooking = "booking"

// Notification is one inbox entry for a user.
type Notification struct {
	ID                string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Type              Type      `gorm:"type:varchar(40);not null" json:"type"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Message           string    `gorm:"type:text;not null" json:"message"`
	RelatedEntityType *string   `gorm:"type:varchar(40)" json:"related_entity_type,omitempty"`
	RelatedEntityID   *string   `gorm:"type:varchar(36);index" json:"related_entity_id,omitempty"`
	IsRead            bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}
