package constants

import "warehouse-booking/models/user"

// Role groups used by the route guards. Admins pass every guard.
var (
	RenterRoles      = []user.Role{user.RoleRenter}
	HostRoles        = []user.Role{user.RoleHost}
	ParticipantRoles = []user.Role{user.RoleRenter, user.RoleHost}
)
