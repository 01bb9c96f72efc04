package domain

// CanUpdateUser implements the owner-or-admin rule: an admin may update any
// account, everyone else only their own.
func CanUpdateUser(callerRole, callerID, targetID string) bool {
	return callerRole == RoleAdmin || callerID == targetID
}

// CanDeleteUser allows admins to delete accounts, except other admins.
// The target-role check is evaluated against the stored record, so a caller
// can never delete an admin regardless of what the request claims.
func CanDeleteUser(callerRole, targetRole string) bool {
	return callerRole == RoleAdmin && targetRole != RoleAdmin
}
