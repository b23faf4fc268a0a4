package user

import (
	"time"
)

type Role string

const (
	RoleRenter Role = "renter"
	RoleHost   Role = "host"
	RoleAdmin  Role = "admin"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// User mirrors the identity provider's account together with the marketplace
// role and the admin approval decision.
type User struct {
	ID             string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Uuid           string         `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Email          string         `gorm:"type:varchar(255);not null;unique" json:"email"`
	FullName       string         `gorm:"type:varchar(255);not null" json:"full_name"`
	Role           Role           `gorm:"type:varchar(20);not null" json:"role"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;default:pending" json:"approval_status"`
	Phone          *string        `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) IsApproved() bool {
	return u.ApprovalStatus == ApprovalApproved
}
