package moderation

import "sportlebanon/internal/admins"

// minRole is the permission table: the lowest role allowed to perform each
// action. Kept as data, separate from the transition tables, so both can be
// tested on their own.
var minRole = map[Action]admins.Role{
	ActionApprove:        admins.RoleAdmin,
	ActionReject:         admins.RoleAdmin,
	ActionSuspend:        admins.RoleAdmin,
	ActionReactivate:     admins.RoleAdmin,
	ActionDisable:        admins.RoleAdmin,
	ActionBlock:          admins.RoleAdmin,
	ActionConfirm:        admins.RoleAdmin,
	ActionCancel:         admins.RoleAdmin,
	ActionComplete:       admins.RoleAdmin,
	ActionDispute:        admins.RoleAdmin,
	ActionResolveDispute: admins.RoleAdmin,

	ActionSetCommissionRate: admins.RoleSuperAdmin,
}

// Allowed reports whether a role may perform an action. Unknown actions are
// never allowed.
func Allowed(act Action, role admins.Role) bool {
	required, ok := minRole[act]
	if !ok {
		return false
	}
	if required == admins.RoleSuperAdmin {
		return role == admins.RoleSuperAdmin
	}
	return role == admins.RoleAdmin || role == admins.RoleSuperAdmin
}
