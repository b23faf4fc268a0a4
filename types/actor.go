package types

import "warehouse-booking/models/user"

// Actor is the authenticated caller of a lifecycle operation.
type Actor struct {
	ID             string              `json:"id"`
	Role           user.Role           `json:"role"`
	ApprovalStatus user.ApprovalStatus `json:"approval_status"`
	Email          string              `json:"email,omitempty"`
}

func ActorFromUser(u *user.User) Actor {
	return Actor{ID: u.ID, Role: u.Role, ApprovalStatus: u.ApprovalStatus, Email: u.Email}
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
