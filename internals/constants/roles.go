package constants

import "fmt"

// Profile roles inside a church
const (
	RoleAdmin  = "admin"
	RoleLeader = "leader"
	RoleMember = "member"

	// Global platform role (cross-tenant maintenance)
	RoleOwner = "owner"
)

// Error message templates per role group
const (
	ErrOnlyAdminsCanAccess  = "❌ Only church admins may access %s."
	ErrOnlyLeadersCanAccess = "❌ Only leaders or admins may access %s."
	ErrOnlyOwnersCanAccess  = "❌ Only the platform owner may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadersCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RoleLeader,
		RoleAdmin,
		RoleOwner,
	}

	LeaderAndAbove = []string{
		RoleLeader,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
