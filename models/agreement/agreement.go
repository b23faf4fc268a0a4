package agreement

import (
	"time"

	"gorm.io/datatypes"
)

type AgreementStatus string

const (
	AgreementStatusDraft         AgreementStatus = "draft"
	AgreementStatusHostEdited    AgreementStatus = "host_edited"
	AgreementStatusFullyAccepted AgreementStatus = "fully_accepted"
)

// StorageAgreement is the single agreement document of a booking together
// with each party's one-shot signature time.
type StorageAgreement struct {
	ID        string                      `gorm:"type:varchar(36);primaryKey" json:"id"`
	BookingID string                      `gorm:"type:varchar(36);not null;uniqueIndex" json:"booking_id"`
	Content   datatypes.JSONType[Content] `json:"content"`
	Status    AgreementStatus             `gorm:"type:varchar(20);not null;default:draft" json:"status"`

	HostAcceptedAt   *time.Time `json:"host_accepted_at,omitempty"`
	RenterAcceptedAt *time.Time `json:"renter_accepted_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsFullyAccepted reports whether both parties have signed.
func (a *StorageAgreement) IsFullyAccepted() bool {
	return a.HostAcceptedAt != nil && a.RenterAcceptedAt != nil
}
